package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/vitrin/vitrin-cli/internal/cli"
	"github.com/vitrin/vitrin-cli/pkg/files"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

func TestDeleteReferencedCategoryNamesTheTable(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := files.InitProjectStructure(); err != nil {
		t.Fatal(err)
	}
	cli.SetGlobalFlags(true, true)

	s, err := store.OpenSQLite(files.DatabasePath())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	cat, err := s.CreateCategory(ctx, models.Category{Name: "Shoes"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateProduct(ctx, models.Product{Name: "Red Shoes", Price: 1, Slug: "red-shoes", CategoryID: cat.ID}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	cmd := NewDeleteCommand()
	cmd.SetArgs([]string{"categories", cat.ID})
	err = cmd.Execute()
	if err == nil {
		t.Fatal("deleting a referenced category must fail")
	}
	if !strings.Contains(err.Error(), "categories record "+cat.ID) {
		t.Errorf("error does not name the table and record: %v", err)
	}
}
