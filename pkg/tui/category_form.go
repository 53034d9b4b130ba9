package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vitrin/vitrin-cli/internal/logging"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

// CategoryFormModel collects a new category.
type CategoryFormModel struct {
	store store.Store

	name        textinput.Model
	description textarea.Model

	focusName  bool
	errs       FieldErrors
	submitting bool
	submitErr  string
}

func NewCategoryForm(s store.Store) *CategoryFormModel {
	m := &CategoryFormModel{
		store:     s,
		errs:      FieldErrors{},
		focusName: true,
	}

	m.name = newFormInput("Category name", 80)
	m.name.Focus()

	m.description = textarea.New()
	m.description.Placeholder = "Optional description..."
	m.description.SetHeight(3)

	return m
}

func (m *CategoryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CategoryFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	category, errs := ValidateCategory(CategoryInput{
		Name:        m.name.Value(),
		Description: m.description.Value(),
	})
	m.errs = errs
	if len(errs) > 0 {
		return nil
	}

	m.submitting = true
	m.submitErr = ""
	return func() tea.Msg {
		_, err := m.store.CreateCategory(context.Background(), category)
		return recordSavedMsg{err: err}
	}
}

func (m *CategoryFormModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case recordSavedMsg:
		m.submitting = false
		if msg.err != nil {
			logging.L().Error("category save failed", zap.Error(msg.err))
			if store.IsPermissionDenied(msg.err) {
				m.submitErr = "You do not have permission to add categories."
			} else {
				m.submitErr = "Failed to save category."
			}
			return nil
		}
		return tea.Batch(statusCmd("Category created successfully"), switchView(categoriesView, ""))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return switchView(categoriesView, "")
		case "tab", "shift+tab":
			m.focusName = !m.focusName
			if m.focusName {
				m.description.Blur()
				m.name.Focus()
			} else {
				m.name.Blur()
				m.description.Focus()
			}
			return nil
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focusName {
				return m.submit()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusName {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.description, cmd = m.description.Update(msg)
	}
	return cmd
}

func (m *CategoryFormModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("New Category"))
	b.WriteString("\n\n")

	if m.submitErr != "" {
		b.WriteString(ErrorStyle.Render(m.submitErr))
		b.WriteString("\n\n")
	}

	b.WriteString(HeaderStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	if msg, ok := m.errs["name"]; ok {
		b.WriteString(ErrorStyle.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString(HeaderStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(DimStyle.Render("Saving..."))
	} else {
		b.WriteString(HelpStyle.Render("tab: switch field · enter/ctrl+s: save · esc: cancel"))
	}
	return b.String()
}
