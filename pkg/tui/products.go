package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vitrin/vitrin-cli/internal/logging"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

// ProductsModel is the back-office product inventory page.
type ProductsModel struct {
	store   store.Store
	table   *DataTable[models.Product]
	confirm *ConfirmationModel

	// gen identifies the in-flight fetch; responses carrying an older
	// generation are dropped so a superseded fetch can never clobber
	// fresher data.
	gen int

	detail *models.Product
	width  int
	height int
}

func stockStatus(quantity int) string {
	switch {
	case quantity == 0:
		return ErrorStyle.Render("Out of Stock")
	case quantity <= 10:
		return WarningStyle.Render("Low Stock")
	default:
		return SuccessStyle.Render("In Stock")
	}
}

func NewProducts(s store.Store, ui models.UISettings) *ProductsModel {
	m := &ProductsModel{
		store:   s,
		confirm: NewConfirmation(),
	}

	columns := []Column[models.Product]{
		{
			Header: "Product",
			Width:  28,
			Render: func(p models.Product) string {
				category := p.CategoryName
				if category == "" {
					category = "No Category"
				}
				indicator := "🖼"
				if len(p.Images) == 0 {
					indicator = " "
				}
				return fmt.Sprintf("%s %s %s", indicator, p.Name, DimStyle.Render("("+category+")"))
			},
		},
		{
			Header: "Price",
			Width:  10,
			Field:  func(p models.Product) any { return p.Price },
			Format: func(v any) string { return formatPrice(v.(float64)) },
		},
		{
			Header: "Stock",
			Width:  22,
			Render: func(p models.Product) string {
				return fmt.Sprintf("%d units %s", p.TotalQuantity, stockStatus(p.TotalQuantity))
			},
		},
		{
			Header: "Orders",
			Width:  12,
			Render: func(p models.Product) string {
				return fmt.Sprintf("%d orders", p.TotalOrders)
			},
		},
	}

	actions := []Action[models.Product]{
		{Label: "view", Key: "v", Do: func(p models.Product) tea.Cmd {
			m.detail = &p
			return nil
		}},
		{Label: "edit", Key: "e", Nav: func(p models.Product) tea.Cmd {
			return switchView(productFormView, p.ID)
		}},
		{Label: "copy", Key: "c", Do: func(p models.Product) tea.Cmd {
			return m.copyImageURL(p)
		}},
		{Label: "delete", Key: "d", Variant: actionDestructive, Do: func(p models.Product) tea.Cmd {
			m.askDelete(p)
			return nil
		}},
	}

	m.table = NewDataTable(columns, actions)
	m.table.SetPageSizeOptions(ui.DefaultPageSize, ui.PageSizeOptions)
	m.table.SetEmptyMessage("No products found. Start by adding your first product!")
	return m
}

func (m *ProductsModel) Init() tea.Cmd {
	return tea.Batch(m.table.Init(), m.Refresh())
}

// Refresh starts a new fetch and invalidates any in-flight one.
func (m *ProductsModel) Refresh() tea.Cmd {
	m.gen++
	m.table.SetLoading(true)
	gen := m.gen
	return func() tea.Msg {
		products, err := m.store.Products(context.Background())
		return productsLoadedMsg{gen: gen, products: products, err: err}
	}
}

func (m *ProductsModel) askDelete(p models.Product) {
	m.confirm.Show(ConfirmationConfig{
		Title:       "Confirm Deletion",
		Message:     fmt.Sprintf("Are you sure you want to delete the product %q?", p.Name),
		Warning:     "This action cannot be undone.",
		Destructive: true,
		YesLabel:    "Delete Product",
		NoLabel:     "Cancel",
	}, func() tea.Cmd {
		return m.deleteProduct(p.ID)
	}, nil)
}

func (m *ProductsModel) deleteProduct(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.store.DeleteProduct(context.Background(), id)
		return productDeletedMsg{id: id, err: err}
	}
}

func (m *ProductsModel) copyImageURL(p models.Product) tea.Cmd {
	if len(p.Images) == 0 {
		return statusCmd("No image URL to copy.")
	}
	url := p.Images[0]
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			logging.L().Warn("clipboard write failed", zap.Error(err))
			return StatusMsg("Could not copy to clipboard.")
		}
		return StatusMsg("Image URL copied to clipboard.")
	}
}

func (m *ProductsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		return nil

	case productsLoadedMsg:
		if msg.gen != m.gen {
			return nil
		}
		if msg.err != nil {
			logging.L().Error("products fetch failed", zap.Error(msg.err))
			m.table.SetError("Failed to load products")
			m.table.SetData(nil)
			return nil
		}
		m.table.SetError("")
		m.table.SetData(msg.products)
		return nil

	case productDeletedMsg:
		if msg.err != nil {
			logging.L().Error("product delete failed",
				zap.String("id", msg.id), zap.Error(msg.err))
			return statusCmd("Failed to delete product")
		}
		m.table.RemoveSelected()
		return statusCmd("Product deleted successfully")

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m.confirm.Update(msg)
		}
		if m.detail != nil {
			if msg.String() == "esc" || msg.String() == "q" {
				m.detail = nil
			}
			return nil
		}
		switch msg.String() {
		case "n":
			return switchView(productFormView, "")
		case "r":
			return m.Refresh()
		case "tab":
			return switchView(categoriesView, "")
		case "esc":
			return switchView(storefrontView, "")
		}
		return m.table.Update(msg)
	}

	return m.table.Update(msg)
}

func (m *ProductsModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Products"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Manage your product inventory and track orders"))
	b.WriteString("\n\n")

	if m.detail != nil {
		b.WriteString(m.renderDetail(*m.detail))
		return b.String()
	}

	if m.confirm.Active() {
		b.WriteString(m.confirm.View())
		return b.String()
	}

	if stats := m.renderStats(); stats != "" {
		b.WriteString(stats)
		b.WriteString("\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("n: new product · r: refresh · s: page size · tab: categories · esc: back"))
	return b.String()
}

// renderStats shows the inventory summary row above a populated table.
func (m *ProductsModel) renderStats() string {
	if m.table.Loading() || m.table.Len() == 0 {
		return ""
	}

	totalStock, totalOrders, outOfStock := 0, 0, 0
	for _, p := range m.table.Data() {
		totalStock += p.TotalQuantity
		totalOrders += p.TotalOrders
		if p.TotalQuantity == 0 {
			outOfStock++
		}
	}

	parts := []string{
		fmt.Sprintf("%d Total Products", m.table.Len()),
		SuccessStyle.Render(fmt.Sprintf("%d Total Stock", totalStock)),
		fmt.Sprintf("%d Total Orders", totalOrders),
		ErrorStyle.Render(fmt.Sprintf("%d Out of Stock", outOfStock)),
	}
	return DimStyle.Render(strings.Join(parts, "  ·  "))
}

func (m *ProductsModel) renderDetail(p models.Product) string {
	var b strings.Builder
	b.WriteString(ActiveBorderStyle.Render(fmt.Sprintf(
		"%s\n%s\n\nPrice: %s\nStock: %d units\nOrders: %d\nSlug: %s\nImages: %d",
		TitleStyle.Render(p.Name),
		DimStyle.Render(p.Description),
		formatPrice(p.DisplayPrice()),
		p.TotalQuantity,
		p.TotalOrders,
		p.Slug,
		len(p.Images),
	)))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("esc: close"))
	return b.String()
}
