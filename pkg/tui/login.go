package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitrin/vitrin-cli/pkg/auth"
)

// LoginModel is the sign-in view shown whenever a protected navigation
// finds no session. target remembers the admin view the user was headed
// to so a successful login lands there.
type LoginModel struct {
	auth   *auth.Service
	target sessionState

	email    textinput.Model
	password textinput.Model

	focusEmail bool
	submitting bool
	errMsg     string
}

func NewLogin(a *auth.Service, target sessionState) *LoginModel {
	m := &LoginModel{
		auth:       a,
		target:     target,
		focusEmail: true,
	}

	m.email = newFormInput("you@example.com", 120)
	m.email.Focus()

	m.password = newFormInput("password", 120)
	m.password.EchoMode = textinput.EchoPassword

	return m
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.errMsg = "Email and password are required."
		return nil
	}

	m.submitting = true
	m.errMsg = ""
	return func() tea.Msg {
		session, err := m.auth.Login(context.Background(), email, password)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m *LoginModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, auth.ErrInvalidCredentials) {
				m.errMsg = "Invalid email or password."
			} else {
				m.errMsg = "Login failed. Please try again."
			}
			return nil
		}
		return tea.Batch(statusCmd("Signed in as "+msg.session.Email), switchView(m.target, ""))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return switchView(storefrontView, "")
		case "tab", "shift+tab", "up", "down":
			m.focusEmail = !m.focusEmail
			if m.focusEmail {
				m.password.Blur()
				m.email.Focus()
			} else {
				m.email.Blur()
				m.password.Focus()
			}
			return nil
		case "ctrl+n":
			return switchView(signupView, "")
		case "enter":
			if m.focusEmail {
				m.focusEmail = false
				m.email.Blur()
				m.password.Focus()
				return nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focusEmail {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Sign In"))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(HeaderStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(DimStyle.Render("Signing in..."))
	} else {
		b.WriteString(HelpStyle.Render("enter: sign in · ctrl+n: create account · esc: back to store"))
	}
	return b.String()
}
