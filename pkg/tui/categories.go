package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vitrin/vitrin-cli/internal/logging"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

// CategoriesModel is the back-office category management page.
type CategoriesModel struct {
	store   store.Store
	table   *DataTable[models.Category]
	confirm *ConfirmationModel

	gen    int
	width  int
	height int
}

func NewCategories(s store.Store, ui models.UISettings) *CategoriesModel {
	m := &CategoriesModel{
		store:   s,
		confirm: NewConfirmation(),
	}

	columns := []Column[models.Category]{
		{Header: "Name", Width: 24, Field: func(c models.Category) any { return c.Name }},
		{
			Header: "Created At",
			Width:  14,
			Field:  func(c models.Category) any { return c.CreatedAt },
			Format: func(v any) string { return v.(time.Time).Format("2006-01-02") },
		},
	}

	actions := []Action[models.Category]{
		{Label: "delete", Key: "d", Variant: actionDestructive, Do: func(c models.Category) tea.Cmd {
			m.askDelete(c)
			return nil
		}},
	}

	m.table = NewDataTable(columns, actions)
	m.table.SetPageSizeOptions(ui.DefaultPageSize, ui.PageSizeOptions)
	m.table.SetEmptyMessage("No categories found. Add one to start organizing products.")
	return m
}

func (m *CategoriesModel) Init() tea.Cmd {
	return tea.Batch(m.table.Init(), m.Refresh())
}

func (m *CategoriesModel) Refresh() tea.Cmd {
	m.gen++
	m.table.SetLoading(true)
	gen := m.gen
	return func() tea.Msg {
		categories, err := m.store.Categories(context.Background())
		return categoriesLoadedMsg{owner: categoriesView, gen: gen, categories: categories, err: err}
	}
}

func (m *CategoriesModel) askDelete(c models.Category) {
	m.confirm.Show(ConfirmationConfig{
		Title:       "Confirm Deletion",
		Message:     fmt.Sprintf("Are you sure you want to delete the category %q?", c.Name),
		Warning:     "This action cannot be undone.",
		Destructive: true,
		YesLabel:    "Delete Category",
		NoLabel:     "Cancel",
	}, func() tea.Cmd {
		return m.deleteCategory(c.ID)
	}, nil)
}

func (m *CategoriesModel) deleteCategory(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.store.DeleteCategory(context.Background(), id)
		return categoryDeletedMsg{id: id, err: err}
	}
}

func (m *CategoriesModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		return nil

	case categoriesLoadedMsg:
		if msg.owner != categoriesView || msg.gen != m.gen {
			return nil
		}
		if msg.err != nil {
			logging.L().Error("categories fetch failed", zap.Error(msg.err))
			m.table.SetError("Failed to load categories")
			m.table.SetData(nil)
			return nil
		}
		m.table.SetError("")
		m.table.SetData(msg.categories)
		return nil

	case categoryDeletedMsg:
		// A reference violation leaves the list untouched; the category
		// still exists and must keep rendering.
		if store.IsForeignKeyViolation(msg.err) {
			return statusCmd("Cannot delete category because it is referenced by products")
		}
		if msg.err != nil {
			logging.L().Error("category delete failed",
				zap.String("id", msg.id), zap.Error(msg.err))
			return statusCmd("Failed to delete category")
		}
		m.table.RemoveSelected()
		return statusCmd("Category deleted successfully")

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m.confirm.Update(msg)
		}
		switch msg.String() {
		case "n":
			return switchView(categoryFormView, "")
		case "r":
			return m.Refresh()
		case "tab":
			return switchView(productsView, "")
		case "esc":
			return switchView(storefrontView, "")
		}
		return m.table.Update(msg)
	}

	return m.table.Update(msg)
}

func (m *CategoriesModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Organize your products into categories"))
	b.WriteString("\n\n")

	if m.confirm.Active() {
		b.WriteString(m.confirm.View())
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("n: new category · r: refresh · s: page size · tab: products · esc: back"))
	return b.String()
}
