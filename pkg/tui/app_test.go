package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vitrin/vitrin-cli/pkg/auth"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

func newTestApp(t *testing.T) (*App, *auth.Service) {
	t.Helper()
	fs := &fakeStore{products: demoProducts()}
	svc := auth.NewService(fs, []byte("test-secret"), filepath.Join(t.TempDir(), "session.json"), 0)
	return NewApp(fs, svc, nil, models.DefaultSettings().UI), svc
}

func TestAppGateRoutesToLoginWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(SwitchViewMsg{view: productsView})
	if cmd == nil {
		t.Fatal("protected navigation produced no session check")
	}
	app.Update(cmd())

	if app.state != loginView {
		t.Errorf("state = %v, want login view", app.state)
	}
	if !strings.Contains(app.View(), "Sign In") {
		t.Error("login view not rendered")
	}
}

func TestAppGateAdmitsWithSession(t *testing.T) {
	app, svc := newTestApp(t)

	if _, err := svc.Signup(context.Background(), "Admin", "", "admin@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Login(context.Background(), "admin@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}

	_, cmd := app.Update(SwitchViewMsg{view: productsView})
	_, cmd = app.Update(cmd())
	if app.state != productsView {
		t.Fatalf("state = %v, want products view", app.state)
	}
	if cmd == nil {
		t.Fatal("products activation should start a fetch")
	}
}

func TestAppUnprotectedSwitchSkipsGate(t *testing.T) {
	app, _ := newTestApp(t)
	app.state = loginView

	_, cmd := app.Update(SwitchViewMsg{view: storefrontView})
	if app.state != storefrontView {
		t.Errorf("state = %v, want storefront", app.state)
	}
	if cmd == nil {
		t.Error("storefront activation should refetch")
	}
}

func TestAppCategoriesResponseRoutedByOwner(t *testing.T) {
	fs := &fakeStore{categories: []models.Category{{ID: "c1", Name: "Shoes"}}}
	svc := auth.NewService(fs, []byte("test-secret"), filepath.Join(t.TempDir(), "session.json"), 0)
	app := NewApp(fs, svc, nil, models.DefaultSettings().UI)

	app.categories = NewCategories(fs, app.ui)
	app.categories.Update(app.categories.Refresh()())
	if app.categories.table.Len() != 1 {
		t.Fatal("categories page did not load")
	}

	// A failed fetch issued by the product form must not reach the
	// categories page, even when both counters happen to line up.
	app.productForm = NewProductForm(fs, nil, "")
	formMsg := app.productForm.fetchCategories()().(categoriesLoadedMsg)
	formMsg.categories = nil
	formMsg.err = &store.Error{Code: "XX000", Message: "boom"}
	app.Update(formMsg)

	if app.categories.table.Len() != 1 {
		t.Errorf("categories page consumed the form's response: %d rows", app.categories.table.Len())
	}
	if strings.Contains(app.categories.View(), "Failed to load categories") {
		t.Error("categories page took the form's fetch error")
	}
	if app.productForm.submitErr == "" {
		t.Error("form did not receive its own fetch error")
	}
}

func TestAppStatusLine(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(StatusMsg("Product deleted successfully"))
	if !strings.Contains(app.View(), "Product deleted successfully") {
		t.Error("status line not rendered")
	}

	// Any keypress clears the transient status.
	app.Update(keyMsg("x"))
	if strings.Contains(app.View(), "Product deleted successfully") {
		t.Error("status line not cleared on keypress")
	}
}
