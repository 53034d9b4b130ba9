package tui

import (
	"testing"

	"github.com/vitrin/vitrin-cli/pkg/models"
)

func formStore() *fakeStore {
	return &fakeStore{
		categories: []models.Category{{ID: "cat-shoes", Name: "Shoes"}, {ID: "cat-bags", Name: "Bags"}},
		products:   []models.Product{{ID: "p2", Name: "Tote Bag", Price: 24.50, CategoryID: "cat-bags"}},
	}
}

func TestProductFormPrefillAfterCategoriesLoad(t *testing.T) {
	fs := formStore()
	m := NewProductForm(fs, nil, "p2")

	m.Update(m.fetchCategories()())
	m.Update(m.fetchProduct()())

	if got := m.selectedCategoryID(); got != "cat-bags" {
		t.Errorf("selected category = %q, want cat-bags", got)
	}
}

func TestProductFormPrefillBeforeCategoriesLoad(t *testing.T) {
	fs := formStore()
	m := NewProductForm(fs, nil, "p2")

	// The two fetches race; when the record lands first the picker must
	// still settle on the record's category once the list arrives.
	m.Update(m.fetchProduct()())
	m.Update(m.fetchCategories()())

	if got := m.selectedCategoryID(); got != "cat-bags" {
		t.Errorf("selected category = %q, want cat-bags", got)
	}
	if m.input().CategoryID != "cat-bags" {
		t.Error("submit payload would carry the wrong category")
	}
}
