package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/vitrin/vitrin-cli/internal/logging"
	"github.com/vitrin/vitrin-cli/pkg/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	price            REAL NOT NULL,
	sold_price       REAL,
	images           TEXT,
	total_quantity   INTEGER NOT NULL DEFAULT 0,
	total_orders     INTEGER NOT NULL DEFAULT 0,
	slug             TEXT NOT NULL,
	meta             TEXT,
	meta_description TEXT NOT NULL DEFAULT '',
	category_id      TEXT REFERENCES categories(id),
	created_at       TIMESTAMP NOT NULL,
	updated_at       TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	phone         TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL UNIQUE,
	password_hash BLOB NOT NULL,
	created_at    TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug);
`

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if necessary creates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.L().Debug("opened sqlite store", zap.String("path", path))
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Categories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, mapSQLError(err, "query categories")
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQLiteStore) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		category.ID, category.Name, category.Description, category.CreatedAt)
	if err != nil {
		return models.Category{}, mapSQLError(err, "insert category")
	}

	logging.L().Info("category created", zap.String("id", category.ID), zap.String("name", category.Name))
	return category, nil
}

func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return mapSQLError(err, "delete category")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &Error{Code: CodeNotFound, Message: fmt.Sprintf("category %s not found", id)}
	}
	logging.L().Info("category deleted", zap.String("id", id))
	return nil
}

const productColumns = `p.id, p.name, p.description, p.price, p.sold_price, p.images,
	p.total_quantity, p.total_orders, p.slug, p.meta, p.meta_description,
	p.category_id, c.name, p.created_at, p.updated_at`

func (s *SQLiteStore) Products(ctx context.Context) ([]models.Product, error) {
	return s.queryProducts(ctx, `ORDER BY p.name ASC`)
}

func (s *SQLiteStore) ProductsByNewest(ctx context.Context) ([]models.Product, error) {
	return s.queryProducts(ctx, `ORDER BY p.created_at DESC`)
}

func (s *SQLiteStore) queryProducts(ctx context.Context, order string) ([]models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products p LEFT JOIN categories c ON c.id = p.category_id %s`,
		productColumns, order)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapSQLError(err, "query products")
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *SQLiteStore) Product(ctx context.Context, id string) (models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products p LEFT JOIN categories c ON c.id = p.category_id WHERE p.id = ?`,
		productColumns)
	row := s.db.QueryRowContext(ctx, query, id)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, &Error{Code: CodeNotFound, Message: fmt.Sprintf("product %s not found", id)}
	}
	return p, err
}

func scanProduct(scan func(...any) error) (models.Product, error) {
	var (
		p            models.Product
		soldPrice    sql.NullFloat64
		imagesJSON   sql.NullString
		metaJSON     sql.NullString
		categoryID   sql.NullString
		categoryName sql.NullString
	)
	err := scan(&p.ID, &p.Name, &p.Description, &p.Price, &soldPrice, &imagesJSON,
		&p.TotalQuantity, &p.TotalOrders, &p.Slug, &metaJSON, &p.MetaDescription,
		&categoryID, &categoryName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, err
		}
		return models.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}

	if soldPrice.Valid {
		p.SoldPrice = &soldPrice.Float64
	}
	if imagesJSON.Valid {
		p.Images = models.NormalizeImages(imagesJSON.String)
	}
	if metaJSON.Valid && metaJSON.String != "" {
		// Meta was validated as JSON on the way in; a decode failure here
		// means a hand-edited database, so the field is just dropped.
		_ = json.Unmarshal([]byte(metaJSON.String), &p.Meta)
	}
	p.CategoryID = categoryID.String
	p.CategoryName = categoryName.String
	return p, nil
}

func (s *SQLiteStore) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	imagesJSON, err := marshalNullable(product.Images, len(product.Images) > 0)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to encode images: %w", err)
	}
	metaJSON, err := marshalNullable(product.Meta, len(product.Meta) > 0)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to encode meta: %w", err)
	}

	var categoryID any
	if product.CategoryID != "" {
		categoryID = product.CategoryID
	}
	var soldPrice any
	if product.SoldPrice != nil {
		soldPrice = *product.SoldPrice
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, sold_price, images,
			total_quantity, total_orders, slug, meta, meta_description,
			category_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, product.Name, product.Description, product.Price, soldPrice, imagesJSON,
		product.TotalQuantity, product.TotalOrders, product.Slug, metaJSON, product.MetaDescription,
		categoryID, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return models.Product{}, mapSQLError(err, "insert product")
	}

	logging.L().Info("product created", zap.String("id", product.ID), zap.String("slug", product.Slug))
	return product, nil
}

func (s *SQLiteStore) UpdateProduct(ctx context.Context, id string, patch ProductPatch) error {
	var (
		sets []string
		args []any
	)
	appendSet := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.Price != nil {
		appendSet("price", *patch.Price)
	}
	if patch.CategoryID != nil {
		appendSet("category_id", *patch.CategoryID)
	}
	if patch.Slug != nil {
		appendSet("slug", *patch.Slug)
	}
	if len(sets) == 0 {
		return nil
	}
	appendSet("updated_at", time.Now().UTC())
	args = append(args, id)

	query := "UPDATE products SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += " WHERE id = ?"

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapSQLError(err, "update product")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &Error{Code: CodeNotFound, Message: fmt.Sprintf("product %s not found", id)}
	}
	logging.L().Info("product updated", zap.String("id", id))
	return nil
}

func (s *SQLiteStore) DeleteProduct(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return mapSQLError(err, "delete product")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &Error{Code: CodeNotFound, Message: fmt.Sprintf("product %s not found", id)}
	}
	logging.L().Info("product deleted", zap.String("id", id))
	return nil
}

func (s *SQLiteStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, phone, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Phone, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return models.User{}, mapSQLError(err, "insert user")
	}

	logging.L().Info("user created", zap.String("id", user.ID), zap.String("email", user.Email))
	return user, nil
}

func (s *SQLiteStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, phone, email, password_hash, created_at FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, &Error{Code: CodeNotFound, Message: fmt.Sprintf("no account for %s", email)}
	}
	if err != nil {
		return models.User{}, mapSQLError(err, "query user")
	}
	return u, nil
}

func marshalNullable(v any, present bool) (any, error) {
	if !present {
		return nil, nil
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

// mapSQLError translates driver errors into coded store errors so callers
// can match on Code instead of driver internals.
func mapSQLError(err error, op string) error {
	var se sqlite3.Error
	if errors.As(err, &se) {
		if se.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return &Error{Code: CodeForeignKeyViolation, Message: fmt.Sprintf("%s: record still referenced", op)}
		}
		if se.Code == sqlite3.ErrAuth || se.Code == sqlite3.ErrPerm || se.Code == sqlite3.ErrReadonly {
			return &Error{Code: CodePermissionDenied, Message: fmt.Sprintf("%s: permission denied", op)}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
