package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig describes one pending confirmation prompt.
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string
	Details     []string
	Destructive bool
	YesLabel    string
	NoLabel     string
	Width       int
}

// ConfirmationModel gates a deferred effect behind an explicit yes/no
// choice. The effect callbacks fire at most once per Show: the first
// resolving keypress deactivates the prompt before running its callback,
// so repeated keys after resolution are inert until the next Show.
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show arms the prompt. The previous callbacks, resolved or not, are
// replaced wholesale.
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

func (m *ConfirmationModel) Hide() {
	m.active = false
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update consumes y/n/esc while the prompt is armed. Any other key is
// swallowed without resolving, keeping the underlying page inert until
// the user decides.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	width := m.config.Width
	if width == 0 {
		width = 56
	}
	contentWidth := width - 4

	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(WarningStyle.Bold(true).Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	if m.config.Message != "" {
		b.WriteString(center.Render(m.config.Message))
		b.WriteString("\n")
	}
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(WarningStyle.Render(m.config.Warning)))
		b.WriteString("\n")
	}
	for _, detail := range m.config.Details {
		b.WriteString(DimStyle.Render("  • " + detail))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(center.Render(m.renderOptions()))

	return ActiveBorderStyle.Width(width).Render(b.String())
}

func (m *ConfirmationModel) renderOptions() string {
	yes := SuccessStyle.Render("[y] " + m.config.YesLabel)
	no := ErrorStyle.Render("[n] " + m.config.NoLabel)
	if m.config.Destructive {
		yes = ErrorStyle.Render("[y] " + m.config.YesLabel)
		no = SuccessStyle.Render("[n] " + m.config.NoLabel)
	}
	return fmt.Sprintf("%s  %s", yes, no)
}
