package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitrin/vitrin-cli/pkg/auth"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/storage"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

type sessionState int

const (
	storefrontView sessionState = iota
	loginView
	signupView
	productsView
	categoriesView
	productFormView
	categoryFormView
)

// isProtected reports whether a view requires a session. Protected
// navigations go through the authorization gate exactly once each.
func isProtected(view sessionState) bool {
	switch view {
	case productsView, categoriesView, productFormView, categoryFormView:
		return true
	}
	return false
}

// App is the root model. It owns view switching, the authorization gate
// for back-office views and the status line; each page owns its own data.
type App struct {
	state sessionState

	store  store.Store
	auth   *auth.Service
	bucket storage.Bucket
	ui     models.UISettings

	storefront   *StorefrontModel
	login        *LoginModel
	signup       *SignupModel
	products     *ProductsModel
	categories   *CategoriesModel
	productForm  *ProductFormModel
	categoryForm *CategoryFormModel

	startAdmin bool
	statusMsg  string
	width      int
	height     int
}

func NewApp(s store.Store, a *auth.Service, bucket storage.Bucket, ui models.UISettings) *App {
	return &App{
		state:      storefrontView,
		store:      s,
		auth:       a,
		bucket:     bucket,
		ui:         ui,
		storefront: NewStorefront(s),
	}
}

// NewAdminApp starts at the products page, still behind the gate.
func NewAdminApp(s store.Store, a *auth.Service, bucket storage.Bucket, ui models.UISettings) *App {
	app := NewApp(s, a, bucket, ui)
	app.startAdmin = true
	return app
}

func (a *App) Init() tea.Cmd {
	if a.startAdmin {
		return tea.Batch(a.storefront.Init(), a.checkSession(productsView))
	}
	return a.storefront.Init()
}

// checkSession asks the auth service whether a session exists before a
// protected view activates.
func (a *App) checkSession(target sessionState) tea.Cmd {
	return func() tea.Msg {
		session, err := a.auth.GetSession()
		return sessionCheckedMsg{target: target, session: session, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.broadcast(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.state == storefrontView && msg.String() == "q" {
			return a, tea.Quit
		}
		a.statusMsg = ""
		return a, a.routeToActive(msg)

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		if isProtected(msg.view) {
			return a, a.checkSession(msg.view)
		}
		return a, a.activate(msg.view, msg.productID)

	case sessionCheckedMsg:
		if msg.err != nil || msg.session == nil {
			a.state = loginView
			a.login = NewLogin(a.auth, msg.target)
			return a, a.login.Init()
		}
		return a, a.activate(msg.target, "")

	case heroTickMsg:
		// The carousel timer keeps running while other views are active
		// so the chain of ticks never breaks.
		return a, a.storefront.Update(msg)

	case productsLoadedMsg:
		if a.products != nil {
			return a, a.products.Update(msg)
		}
		return a, nil

	case categoriesLoadedMsg:
		switch msg.owner {
		case categoriesView:
			if a.categories != nil {
				return a, a.categories.Update(msg)
			}
		case productFormView:
			if a.productForm != nil {
				return a, a.productForm.Update(msg)
			}
		}
		return a, nil

	case storefrontLoadedMsg:
		return a, a.storefront.Update(msg)

	case productDeletedMsg:
		if a.products != nil {
			return a, a.products.Update(msg)
		}
		return a, nil

	case categoryDeletedMsg:
		if a.categories != nil {
			return a, a.categories.Update(msg)
		}
		return a, nil
	}

	return a, a.routeToActive(msg)
}

// activate switches to a view that passed any required gate. Form views
// get a fresh model per visit; list pages persist and refetch.
func (a *App) activate(view sessionState, productID string) tea.Cmd {
	a.state = view
	switch view {
	case storefrontView:
		return a.storefront.Refresh()
	case loginView:
		a.login = NewLogin(a.auth, productsView)
		return a.login.Init()
	case signupView:
		a.signup = NewSignup(a.auth)
		return a.signup.Init()
	case productsView:
		if a.products == nil {
			a.products = NewProducts(a.store, a.ui)
			return a.products.Init()
		}
		return a.products.Refresh()
	case categoriesView:
		if a.categories == nil {
			a.categories = NewCategories(a.store, a.ui)
			return a.categories.Init()
		}
		return a.categories.Refresh()
	case productFormView:
		a.productForm = NewProductForm(a.store, a.bucket, productID)
		return a.productForm.Init()
	case categoryFormView:
		a.categoryForm = NewCategoryForm(a.store)
		return a.categoryForm.Init()
	}
	return nil
}

func (a *App) routeToActive(msg tea.Msg) tea.Cmd {
	switch a.state {
	case storefrontView:
		return a.storefront.Update(msg)
	case loginView:
		if a.login != nil {
			return a.login.Update(msg)
		}
	case signupView:
		if a.signup != nil {
			return a.signup.Update(msg)
		}
	case productsView:
		if a.products != nil {
			return a.products.Update(msg)
		}
	case categoriesView:
		if a.categories != nil {
			return a.categories.Update(msg)
		}
	case productFormView:
		if a.productForm != nil {
			return a.productForm.Update(msg)
		}
	case categoryFormView:
		if a.categoryForm != nil {
			return a.categoryForm.Update(msg)
		}
	}
	return nil
}

func (a *App) broadcast(msg tea.WindowSizeMsg) {
	a.storefront.Update(msg)
	if a.products != nil {
		a.products.Update(msg)
	}
	if a.categories != nil {
		a.categories.Update(msg)
	}
}

func (a *App) View() string {
	view := a.activeView()
	if a.statusMsg == "" {
		return view
	}
	status := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(a.statusMsg)
	return view + "\n" + status
}

func (a *App) activeView() string {
	switch a.state {
	case storefrontView:
		return a.storefront.View()
	case loginView:
		if a.login != nil {
			return a.login.View()
		}
	case signupView:
		if a.signup != nil {
			return a.signup.View()
		}
	case productsView:
		if a.products != nil {
			return a.products.View()
		}
	case categoriesView:
		if a.categories != nil {
			return a.categories.View()
		}
	case productFormView:
		if a.productForm != nil {
			return a.productForm.View()
		}
	case categoryFormView:
		if a.categoryForm != nil {
			return a.categoryForm.View()
		}
	}
	return ""
}
