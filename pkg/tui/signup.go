package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitrin/vitrin-cli/pkg/auth"
)

const (
	signupFieldName = iota
	signupFieldPhone
	signupFieldEmail
	signupFieldPassword
	signupFieldCount
)

// SignupModel is the account creation view. A successful signup logs the
// user straight in.
type SignupModel struct {
	auth *auth.Service

	name     textinput.Model
	phone    textinput.Model
	email    textinput.Model
	password textinput.Model

	focus      int
	submitting bool
	errMsg     string
}

func NewSignup(a *auth.Service) *SignupModel {
	m := &SignupModel{auth: a}

	m.name = newFormInput("Full name", 120)
	m.name.Focus()
	m.phone = newFormInput("Phone (optional)", 40)
	m.email = newFormInput("you@example.com", 120)
	m.password = newFormInput("password", 120)
	m.password.EchoMode = textinput.EchoPassword

	return m
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	name := strings.TrimSpace(m.name.Value())
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if name == "" || email == "" || password == "" {
		m.errMsg = "Name, email and password are required."
		return nil
	}

	phone := strings.TrimSpace(m.phone.Value())
	m.submitting = true
	m.errMsg = ""
	return func() tea.Msg {
		_, err := m.auth.Signup(context.Background(), name, phone, email, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		session, err := m.auth.Login(context.Background(), email, password)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m *SignupModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, auth.ErrEmailTaken) {
				m.errMsg = "An account with this email already exists."
			} else {
				m.errMsg = "Signup failed. Please try again."
			}
			return nil
		}
		return tea.Batch(statusCmd("Welcome, "+msg.session.Email), switchView(productsView, ""))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return switchView(loginView, "")
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return nil
		case "enter":
			if m.focus == signupFieldPassword {
				return m.submit()
			}
			m.setFocus(m.focus + 1)
			return nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case signupFieldName:
		m.name, cmd = m.name.Update(msg)
	case signupFieldPhone:
		m.phone, cmd = m.phone.Update(msg)
	case signupFieldEmail:
		m.email, cmd = m.email.Update(msg)
	case signupFieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return cmd
}

func (m *SignupModel) setFocus(focus int) {
	m.focus = (focus + signupFieldCount) % signupFieldCount

	m.name.Blur()
	m.phone.Blur()
	m.email.Blur()
	m.password.Blur()

	switch m.focus {
	case signupFieldName:
		m.name.Focus()
	case signupFieldPhone:
		m.phone.Focus()
	case signupFieldEmail:
		m.email.Focus()
	case signupFieldPassword:
		m.password.Focus()
	}
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Create Account"))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	fields := []struct {
		label string
		view  string
	}{
		{"Name", m.name.View()},
		{"Phone", m.phone.View()},
		{"Email", m.email.View()},
		{"Password", m.password.View()},
	}
	for _, f := range fields {
		b.WriteString(HeaderStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.view)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString(DimStyle.Render("Creating account..."))
	} else {
		b.WriteString(HelpStyle.Render("tab: next field · enter: submit · esc: back to sign in"))
	}
	return b.String()
}
