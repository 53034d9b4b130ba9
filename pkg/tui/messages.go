package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitrin/vitrin-cli/pkg/auth"
	"github.com/vitrin/vitrin-cli/pkg/models"
)

// StatusMsg updates the transient status line at the bottom of the app,
// the terminal equivalent of a toast.
type StatusMsg string

// SwitchViewMsg asks the app to change the active view. ProductID carries
// the target record for the edit view.
type SwitchViewMsg struct {
	view      sessionState
	productID string
}

// sessionCheckedMsg reports the authorization gate's answer for a pending
// protected navigation.
type sessionCheckedMsg struct {
	target  sessionState
	session *auth.Session
	err     error
}

// productsLoadedMsg delivers a products fetch. Gen identifies the request;
// responses from superseded fetches are dropped.
type productsLoadedMsg struct {
	gen      int
	products []models.Product
	err      error
}

// categoriesLoadedMsg is shared by the categories page and the product
// form; owner says which view issued the fetch, so a page never consumes
// another page's response.
type categoriesLoadedMsg struct {
	owner      sessionState
	gen        int
	categories []models.Category
	err        error
}

// storefrontLoadedMsg carries both collections the landing view needs.
type storefrontLoadedMsg struct {
	gen        int
	products   []models.Product
	categories []models.Category
	err        error
}

type productDeletedMsg struct {
	id  string
	err error
}

type categoryDeletedMsg struct {
	id  string
	err error
}

// recordSavedMsg reports the outcome of a form submission.
type recordSavedMsg struct {
	err error
}

// heroTickMsg advances the hero carousel.
type heroTickMsg time.Time

// loginDoneMsg reports an authentication attempt from the login or signup
// view.
type loginDoneMsg struct {
	session *auth.Session
	err     error
}

// switchView produces the command form of SwitchViewMsg.
func switchView(view sessionState, productID string) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: view, productID: productID}
	}
}

func statusCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(message)
	}
}
