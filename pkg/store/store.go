// Package store defines the persistence boundary for the storefront and
// back-office. Pages depend only on the Store interface; the SQLite
// implementation in this package is the default local backend.
package store

import (
	"context"
	"errors"

	"github.com/vitrin/vitrin-cli/pkg/models"
)

// Error codes follow the backend's SQLSTATE-style convention so pages can
// pattern-match specific failures for nicer messages.
const (
	CodeForeignKeyViolation = "23503"
	CodePermissionDenied    = "42501"
	CodeNotFound            = "02000"
)

// Error is a collaborator failure carrying a matchable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsForeignKeyViolation reports whether err is a reference-violation error,
// e.g. deleting a category that products still point at.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, CodeForeignKeyViolation)
}

// IsPermissionDenied reports whether err is a permission failure.
func IsPermissionDenied(err error) bool {
	return hasCode(err, CodePermissionDenied)
}

// IsNotFound reports whether err indicates a missing record.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func hasCode(err error, code string) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == code
}

// ProductPatch carries the editable subset of a product for updates.
// Nil fields are left unchanged.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *string
	Slug        *string
}

// Store is the full persistence contract consumed by the TUI and CLI.
type Store interface {
	Categories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Products(ctx context.Context) ([]models.Product, error)
	ProductsByNewest(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id string) (models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) error
	DeleteProduct(ctx context.Context, id string) error

	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)

	Close() error
}
