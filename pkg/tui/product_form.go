package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/vitrin/vitrin-cli/internal/logging"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/storage"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

// Form field order. The category picker sits between the plain inputs and
// is cycled with left/right instead of typed into.
const (
	fieldName = iota
	fieldDescription
	fieldPrice
	fieldSoldPrice
	fieldQuantity
	fieldCategory
	fieldImages
	fieldMeta
	fieldMetaDescription
	fieldCount
)

// productLoadedMsg delivers the record the edit form prefills from.
type productLoadedMsg struct {
	product models.Product
	err     error
}

// ProductFormModel collects a product record, for both create and edit.
// productID empty means create.
type ProductFormModel struct {
	store  store.Store
	bucket storage.Bucket

	productID string

	name            textinput.Model
	description     textarea.Model
	price           textinput.Model
	soldPrice       textinput.Model
	quantity        textinput.Model
	images          textinput.Model
	meta            textarea.Model
	metaDescription textinput.Model

	categories []models.Category
	catIndex   int
	// pendingCategoryID holds the edit record's category when it arrives
	// before the category list does; applied once the list lands.
	pendingCategoryID string
	gen               int

	focus      int
	errs       FieldErrors
	submitting bool
	submitErr  string
}

func NewProductForm(s store.Store, bucket storage.Bucket, productID string) *ProductFormModel {
	m := &ProductFormModel{
		store:     s,
		bucket:    bucket,
		productID: productID,
		errs:      FieldErrors{},
	}

	m.name = newFormInput("Product name", 120)
	m.price = newFormInput("19.99", 20)
	m.soldPrice = newFormInput("optional sale price", 20)
	m.quantity = newFormInput("0", 10)
	m.images = newFormInput("comma-separated image file paths", 400)
	m.metaDescription = newFormInput("SEO description", 200)

	m.description = textarea.New()
	m.description.Placeholder = "Describe the product..."
	m.description.SetHeight(3)

	m.meta = textarea.New()
	m.meta.Placeholder = `{"key": "value"}`
	m.meta.SetHeight(3)

	m.name.Focus()
	return m
}

func newFormInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	return ti
}

func (m *ProductFormModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchCategories(), textinput.Blink}
	if m.productID != "" {
		cmds = append(cmds, m.fetchProduct())
	}
	return tea.Batch(cmds...)
}

func (m *ProductFormModel) fetchCategories() tea.Cmd {
	m.gen++
	gen := m.gen
	return func() tea.Msg {
		categories, err := m.store.Categories(context.Background())
		return categoriesLoadedMsg{owner: productFormView, gen: gen, categories: categories, err: err}
	}
}

func (m *ProductFormModel) fetchProduct() tea.Cmd {
	id := m.productID
	return func() tea.Msg {
		product, err := m.store.Product(context.Background(), id)
		return productLoadedMsg{product: product, err: err}
	}
}

func (m *ProductFormModel) prefill(p models.Product) {
	m.name.SetValue(p.Name)
	m.description.SetValue(p.Description)
	m.price.SetValue(strconv.FormatFloat(p.Price, 'f', -1, 64))
	if p.SoldPrice != nil {
		m.soldPrice.SetValue(strconv.FormatFloat(*p.SoldPrice, 'f', -1, 64))
	}
	m.quantity.SetValue(strconv.Itoa(p.TotalQuantity))
	m.metaDescription.SetValue(p.MetaDescription)
	m.selectCategory(p.CategoryID)
}

func (m *ProductFormModel) selectCategory(id string) {
	m.pendingCategoryID = id
	for i, c := range m.categories {
		if c.ID == id {
			m.catIndex = i
			m.pendingCategoryID = ""
			return
		}
	}
}

func (m *ProductFormModel) selectedCategoryID() string {
	if m.catIndex < 0 || m.catIndex >= len(m.categories) {
		return ""
	}
	return m.categories[m.catIndex].ID
}

func (m *ProductFormModel) input() ProductInput {
	var paths []string
	for _, p := range strings.Split(m.images.Value(), ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return ProductInput{
		Name:            m.name.Value(),
		Description:     m.description.Value(),
		Price:           m.price.Value(),
		SoldPrice:       m.soldPrice.Value(),
		TotalQuantity:   m.quantity.Value(),
		CategoryID:      m.selectedCategoryID(),
		Images:          paths,
		Meta:            m.meta.Value(),
		MetaDescription: m.metaDescription.Value(),
	}
}

// submit validates and, on success, runs the save exactly once. While a
// save is in flight further submits are ignored.
func (m *ProductFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	payload, errs := ValidateProduct(m.input())
	m.errs = errs
	if len(errs) > 0 {
		return nil
	}

	m.submitting = true
	m.submitErr = ""
	if m.productID != "" {
		return m.saveUpdate(payload)
	}
	return m.saveNew(payload)
}

func (m *ProductFormModel) saveNew(payload ProductPayload) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		// Images first; a failed upload aborts before any insert.
		urls, err := storage.UploadFiles(ctx, m.bucket, payload.Images)
		if err != nil {
			return recordSavedMsg{err: err}
		}

		_, err = m.store.CreateProduct(ctx, models.Product{
			Name:            payload.Name,
			Description:     payload.Description,
			Price:           payload.Price,
			SoldPrice:       payload.SoldPrice,
			Images:          urls,
			TotalQuantity:   payload.TotalQuantity,
			Slug:            payload.Slug,
			Meta:            payload.Meta,
			MetaDescription: payload.MetaDescription,
			CategoryID:      payload.CategoryID,
		})
		return recordSavedMsg{err: err}
	}
}

func (m *ProductFormModel) saveUpdate(payload ProductPayload) tea.Cmd {
	id := m.productID
	return func() tea.Msg {
		err := m.store.UpdateProduct(context.Background(), id, store.ProductPatch{
			Name:        &payload.Name,
			Description: &payload.Description,
			Price:       &payload.Price,
			CategoryID:  &payload.CategoryID,
			Slug:        &payload.Slug,
		})
		return recordSavedMsg{err: err}
	}
}

func (m *ProductFormModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		if msg.owner != productFormView || msg.gen != m.gen {
			return nil
		}
		if msg.err != nil {
			logging.L().Error("categories fetch failed", zap.Error(msg.err))
			m.submitErr = "Failed to load categories"
			return nil
		}
		m.categories = msg.categories
		if m.pendingCategoryID != "" {
			m.selectCategory(m.pendingCategoryID)
		}
		return nil

	case productLoadedMsg:
		if msg.err != nil {
			logging.L().Error("product fetch failed",
				zap.String("id", m.productID), zap.Error(msg.err))
			m.submitErr = "Failed to load product"
			return nil
		}
		m.prefill(msg.product)
		return nil

	case recordSavedMsg:
		m.submitting = false
		if msg.err != nil {
			logging.L().Error("product save failed", zap.Error(msg.err))
			if store.IsPermissionDenied(msg.err) {
				m.submitErr = "You do not have permission to save products."
			} else {
				m.submitErr = "Failed to save product."
			}
			return nil
		}
		label := "Product created successfully"
		if m.productID != "" {
			label = "Product updated successfully"
		}
		return tea.Batch(statusCmd(label), switchView(productsView, ""))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m *ProductFormModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return switchView(productsView, "")
	case "tab", "shift+tab", "up", "down":
		if m.focus == fieldDescription || m.focus == fieldMeta {
			// up/down move the cursor inside a textarea
			if msg.String() == "up" || msg.String() == "down" {
				return m.updateFocused(msg)
			}
		}
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.setFocus(m.focus - 1)
		} else {
			m.setFocus(m.focus + 1)
		}
		return nil
	case "left", "right":
		if m.focus == fieldCategory && len(m.categories) > 0 {
			if msg.String() == "left" {
				m.catIndex = (m.catIndex - 1 + len(m.categories)) % len(m.categories)
			} else {
				m.catIndex = (m.catIndex + 1) % len(m.categories)
			}
			return nil
		}
	case "ctrl+s":
		return m.submit()
	case "enter":
		// enter submits from single-line fields; textareas keep it
		if m.focus != fieldDescription && m.focus != fieldMeta {
			return m.submit()
		}
	}
	return m.updateFocused(msg)
}

func (m *ProductFormModel) setFocus(focus int) {
	m.focus = (focus + fieldCount) % fieldCount

	m.name.Blur()
	m.description.Blur()
	m.price.Blur()
	m.soldPrice.Blur()
	m.quantity.Blur()
	m.images.Blur()
	m.meta.Blur()
	m.metaDescription.Blur()

	switch m.focus {
	case fieldName:
		m.name.Focus()
	case fieldDescription:
		m.description.Focus()
	case fieldPrice:
		m.price.Focus()
	case fieldSoldPrice:
		m.soldPrice.Focus()
	case fieldQuantity:
		m.quantity.Focus()
	case fieldImages:
		m.images.Focus()
	case fieldMeta:
		m.meta.Focus()
	case fieldMetaDescription:
		m.metaDescription.Focus()
	}
}

func (m *ProductFormModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldPrice:
		m.price, cmd = m.price.Update(msg)
	case fieldSoldPrice:
		m.soldPrice, cmd = m.soldPrice.Update(msg)
	case fieldQuantity:
		m.quantity, cmd = m.quantity.Update(msg)
	case fieldImages:
		m.images, cmd = m.images.Update(msg)
	case fieldMeta:
		m.meta, cmd = m.meta.Update(msg)
	case fieldMetaDescription:
		m.metaDescription, cmd = m.metaDescription.Update(msg)
	}
	return cmd
}

func (m *ProductFormModel) View() string {
	title := "New Product"
	if m.productID != "" {
		title = "Edit Product"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	if m.submitErr != "" {
		b.WriteString(ErrorStyle.Render(m.submitErr))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderField("Name", "name", m.name.View()))
	b.WriteString(m.renderField("Description", "description", m.description.View()))
	b.WriteString(m.renderField("Price", "price", m.price.View()))
	b.WriteString(m.renderField("Sale Price", "sold_price", m.soldPrice.View()))
	b.WriteString(m.renderField("Quantity", "total_quantity", m.quantity.View()))
	b.WriteString(m.renderField("Category", "category", m.renderCategoryPicker()))
	b.WriteString(m.renderField("Images", "images", m.images.View()))
	b.WriteString(m.renderField("Metadata", "meta", m.meta.View()))
	b.WriteString(m.renderField("SEO Description", "meta_description", m.metaDescription.View()))

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(DimStyle.Render("Saving..."))
	} else {
		b.WriteString(HelpStyle.Render("tab: next field · ←/→: pick category · ctrl+s: save · esc: cancel"))
	}
	return b.String()
}

func (m *ProductFormModel) renderField(label, key, control string) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(control)
	b.WriteString("\n")
	if msg, ok := m.errs[key]; ok {
		b.WriteString(ErrorStyle.Render(msg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ProductFormModel) renderCategoryPicker() string {
	if len(m.categories) == 0 {
		return DimStyle.Render("(no categories yet)")
	}

	var chips []string
	for i, c := range m.categories {
		style := ChipStyle
		if i == m.catIndex {
			style = ChipActiveStyle
		}
		chips = append(chips, style.Render(c.Name))
	}
	picker := strings.Join(chips, " ")
	if m.focus == fieldCategory {
		return lipgloss.NewStyle().Bold(true).Render(picker)
	}
	return picker
}
