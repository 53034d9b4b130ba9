package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

// fakeStore implements store.Store with canned data for page tests.
type fakeStore struct {
	categories []models.Category
	products   []models.Product

	productsErr error
	deleteErr   error

	deletedProducts   []string
	deletedCategories []string
}

func (f *fakeStore) Categories(context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeStore) CreateCategory(_ context.Context, c models.Category) (models.Category, error) {
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeStore) DeleteCategory(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedCategories = append(f.deletedCategories, id)
	return nil
}

func (f *fakeStore) Products(context.Context) ([]models.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeStore) ProductsByNewest(context.Context) ([]models.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeStore) Product(_ context.Context, id string) (models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, &store.Error{Code: store.CodeNotFound, Message: "product not found"}
}

func (f *fakeStore) CreateProduct(_ context.Context, p models.Product) (models.Product, error) {
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeStore) UpdateProduct(context.Context, string, store.ProductPatch) error {
	return nil
}

func (f *fakeStore) DeleteProduct(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedProducts = append(f.deletedProducts, id)
	return nil
}

func (f *fakeStore) CreateUser(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}

func (f *fakeStore) UserByEmail(context.Context, string) (models.User, error) {
	return models.User{}, &store.Error{Code: store.CodeNotFound, Message: "user not found"}
}

func (f *fakeStore) Close() error { return nil }

func demoProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Red Shoes", Price: 59.99, TotalQuantity: 12, TotalOrders: 4, Slug: "red-shoes"},
		{ID: "p2", Name: "Tote Bag", Price: 24.50, TotalQuantity: 3, TotalOrders: 9, Slug: "tote-bag"},
		{ID: "p3", Name: "Wool Scarf", Price: 18.00, TotalQuantity: 0, TotalOrders: 1, Slug: "wool-scarf"},
	}
}

func TestProductsLoadAndRender(t *testing.T) {
	m := NewProducts(&fakeStore{products: demoProducts()}, models.DefaultSettings().UI)

	cmd := m.Refresh()
	m.Update(cmd())

	view := m.View()
	for _, want := range []string{"Red Shoes", "$59.99", "In Stock", "Low Stock", "Out of Stock"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(view, "3 Total Products") ||
		!strings.Contains(view, "15 Total Stock") ||
		!strings.Contains(view, "1 Out of Stock") {
		t.Errorf("summary stats wrong:\n%s", view)
	}
}

func TestProductsPageSizeFromSettings(t *testing.T) {
	ui := models.UISettings{DefaultPageSize: 2, PageSizeOptions: []int{2, 4}}
	m := NewProducts(&fakeStore{products: demoProducts()}, ui)
	m.Update(m.Refresh()())

	view := m.View()
	if !strings.Contains(view, "Showing 1 to 2 of 3 results · 2/page") {
		t.Errorf("configured page size not applied:\n%s", view)
	}
}

func TestProductsStaleFetchDropped(t *testing.T) {
	fs := &fakeStore{products: demoProducts()}
	m := NewProducts(fs, models.DefaultSettings().UI)

	first := m.Refresh()
	firstMsg := first().(productsLoadedMsg)

	second := m.Refresh()
	secondMsg := second().(productsLoadedMsg)
	secondMsg.products = secondMsg.products[:1]

	// Fresh response lands first; the superseded one must not clobber it.
	m.Update(secondMsg)
	if m.table.Len() != 1 {
		t.Fatalf("fresh fetch applied %d rows, want 1", m.table.Len())
	}
	m.Update(firstMsg)
	if m.table.Len() != 1 {
		t.Errorf("stale fetch overwrote fresh data: %d rows", m.table.Len())
	}
}

func TestProductsFetchError(t *testing.T) {
	fs := &fakeStore{productsErr: &store.Error{Code: "XX000", Message: "boom"}}
	m := NewProducts(fs, models.DefaultSettings().UI)

	cmd := m.Refresh()
	m.Update(cmd())

	view := m.View()
	if !strings.Contains(view, "Failed to load products") {
		t.Errorf("fetch error not surfaced:\n%s", view)
	}
}

func TestProductsDeleteFlow(t *testing.T) {
	fs := &fakeStore{products: demoProducts()}
	m := NewProducts(fs, models.DefaultSettings().UI)
	m.Update(m.Refresh()())

	// "d" arms the confirmation for the selected row; nothing deleted yet.
	m.Update(keyMsg("d"))
	if !m.confirm.Active() {
		t.Fatal("delete should open the confirmation gate")
	}
	if len(fs.deletedProducts) != 0 {
		t.Fatal("delete ran before confirmation")
	}

	// Cancel leaves the row in place.
	m.Update(keyMsg("n"))
	if len(fs.deletedProducts) != 0 || m.table.Len() != 3 {
		t.Fatal("cancel must not delete")
	}

	// Confirm runs the delete and removes the row locally.
	m.Update(keyMsg("d"))
	deleteCmd := m.Update(keyMsg("y"))
	if deleteCmd == nil {
		t.Fatal("confirm produced no command")
	}
	status := m.Update(deleteCmd())
	if len(fs.deletedProducts) != 1 || fs.deletedProducts[0] != "p1" {
		t.Errorf("deleted %v, want [p1]", fs.deletedProducts)
	}
	if m.table.Len() != 2 {
		t.Errorf("row not removed locally: %d rows", m.table.Len())
	}
	if status == nil {
		t.Fatal("no status after delete")
	}
	if s, ok := status().(StatusMsg); !ok || !strings.Contains(string(s), "deleted successfully") {
		t.Errorf("unexpected status %v", status())
	}
}

func TestCategoriesDeleteForeignKeyViolation(t *testing.T) {
	fs := &fakeStore{
		categories: []models.Category{{ID: "c1", Name: "Shoes"}, {ID: "c2", Name: "Bags"}},
		deleteErr:  &store.Error{Code: store.CodeForeignKeyViolation, Message: "fk"},
	}
	m := NewCategories(fs, models.DefaultSettings().UI)
	m.Update(m.Refresh()().(categoriesLoadedMsg))

	m.Update(keyMsg("d"))
	deleteCmd := m.Update(keyMsg("y"))
	status := m.Update(deleteCmd())

	if m.table.Len() != 2 {
		t.Errorf("list changed after failed delete: %d rows", m.table.Len())
	}
	if s, ok := status().(StatusMsg); !ok || !strings.Contains(string(s), "referenced by products") {
		t.Errorf("unexpected status %v", status())
	}
	if !strings.Contains(m.View(), "Shoes") {
		t.Error("category missing from view after failed delete")
	}
}

func TestCategoriesDeleteSuccess(t *testing.T) {
	fs := &fakeStore{categories: []models.Category{{ID: "c1", Name: "Shoes"}}}
	m := NewCategories(fs, models.DefaultSettings().UI)
	m.Update(m.Refresh()())

	m.Update(keyMsg("d"))
	deleteCmd := m.Update(keyMsg("y"))
	m.Update(deleteCmd())

	if len(fs.deletedCategories) != 1 || fs.deletedCategories[0] != "c1" {
		t.Errorf("deleted %v, want [c1]", fs.deletedCategories)
	}
	if m.table.Len() != 0 {
		t.Errorf("row not removed locally")
	}
}
