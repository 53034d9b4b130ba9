package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"

	"github.com/vitrin/vitrin-cli/internal/logging"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

const allCategories = "all"

// StorefrontModel is the customer-facing landing view: hero carousel,
// category filter chips and the product grid.
type StorefrontModel struct {
	store store.Store
	hero  *HeroModel

	products   []models.Product
	categories []string
	selected   string

	cursor  int
	gen     int
	loading bool
	errMsg  string

	width  int
	height int
}

func NewStorefront(s store.Store) *StorefrontModel {
	return &StorefrontModel{
		store:    s,
		hero:     NewHero(),
		selected: allCategories,
		loading:  true,
		width:    80,
	}
}

func (m *StorefrontModel) Init() tea.Cmd {
	return tea.Batch(m.hero.Init(), m.Refresh())
}

// Refresh loads products newest-first plus the category names for the
// filter chips.
func (m *StorefrontModel) Refresh() tea.Cmd {
	m.gen++
	m.loading = true
	gen := m.gen
	return func() tea.Msg {
		ctx := context.Background()
		products, err := m.store.ProductsByNewest(ctx)
		if err != nil {
			return storefrontLoadedMsg{gen: gen, err: err}
		}
		categories, err := m.store.Categories(ctx)
		if err != nil {
			return storefrontLoadedMsg{gen: gen, err: err}
		}
		return storefrontLoadedMsg{gen: gen, products: products, categories: categories}
	}
}

// visible returns the products under the active category filter. The
// filter is applied client-side; switching chips never refetches.
func (m *StorefrontModel) visible() []models.Product {
	if m.selected == allCategories {
		return m.products
	}
	var out []models.Product
	for _, p := range m.products {
		if p.CategoryName == m.selected {
			out = append(out, p)
		}
	}
	return out
}

func (m *StorefrontModel) selectCategory(offset int) {
	if len(m.categories) == 0 {
		return
	}
	index := 0
	for i, c := range m.categories {
		if c == m.selected {
			index = i
			break
		}
	}
	index = (index + offset + len(m.categories)) % len(m.categories)
	m.selected = m.categories[index]
	m.cursor = 0
}

func (m *StorefrontModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.hero.SetWidth(msg.Width)
		return nil

	case heroTickMsg:
		return m.hero.Update(msg)

	case storefrontLoadedMsg:
		if msg.gen != m.gen {
			return nil
		}
		m.loading = false
		if msg.err != nil {
			logging.L().Error("storefront fetch failed", zap.Error(msg.err))
			m.errMsg = "Failed to fetch data"
			return nil
		}
		m.errMsg = ""
		m.products = msg.products
		m.categories = make([]string, 0, len(msg.categories)+1)
		m.categories = append(m.categories, allCategories)
		for _, c := range msg.categories {
			m.categories = append(m.categories, c.Name)
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.hero.Prev()
		case "right", "l":
			m.hero.Next()
		case "tab":
			m.selectCategory(1)
		case "shift+tab":
			m.selectCategory(-1)
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "r":
			return m.Refresh()
		case "a":
			return switchView(productsView, "")
		}
		return nil
	}

	return nil
}

func (m *StorefrontModel) View() string {
	var b strings.Builder
	b.WriteString(m.hero.View())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
		return b.String()
	}

	if m.loading {
		b.WriteString(DimStyle.Render("Loading products..."))
		return b.String()
	}

	b.WriteString(m.renderChips())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("←/→: hero · tab: category · ↑/↓: browse · a: admin · r: refresh · q: quit"))
	return b.String()
}

func (m *StorefrontModel) renderChips() string {
	var chips []string
	for _, c := range m.categories {
		if c == m.selected {
			chips = append(chips, ChipActiveStyle.Render(c))
		} else {
			chips = append(chips, ChipStyle.Render(c))
		}
	}
	return strings.Join(chips, " ")
}

func (m *StorefrontModel) renderGrid() string {
	products := m.visible()
	if len(products) == 0 {
		return EmptyStateStyle.Render("No products in this category yet.")
	}

	cardWidth := 24
	cols := m.width / (cardWidth + 2)
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(products); start += cols {
		end := start + cols
		if end > len(products) {
			end = len(products)
		}
		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(products[i], i == m.cursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m *StorefrontModel) renderCard(p models.Product, selected bool, width int) string {
	inner := width - 2

	image := "🖼  photo"
	if len(p.Images) == 0 {
		image = DimStyle.Render("(no image)")
	}

	price := formatPrice(p.DisplayPrice())
	if p.SoldPrice != nil {
		price = fmt.Sprintf("%s %s",
			SuccessStyle.Render(formatPrice(*p.SoldPrice)),
			DimStyle.Render(strikethrough(formatPrice(p.Price))))
	}

	name := truncate.StringWithTail(p.Name, uint(inner), "…")
	body := fmt.Sprintf("%s\n%s\n%s", image, name, price)

	border := InactiveBorderStyle
	if selected {
		border = ActiveBorderStyle
	}
	return border.Width(width).Render(body)
}

func strikethrough(s string) string {
	return lipgloss.NewStyle().Strikethrough(true).Render(s)
}
