// Package ui is the terminal front end of the storefront.
//
// The Model owns no business state. It forwards user intent to the
// app.Controller, runs boundary calls as tea.Cmds and applies their results
// when the messages come back to Update.
package ui

import (
	"context"
	"time"

	"storefront/internal/app"
	"storefront/internal/model"
	"storefront/internal/router"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Backend is the part of the remote API the screens read from directly.
type Backend interface {
	LoadCatalog(ctx context.Context) (model.Catalog, error)
	ListOrders(ctx context.Context, token string) ([]model.Order, error)
	ShipOrder(ctx context.Context, token string, orderID int64, s model.Shipment) (model.Order, error)
	MyProducts(ctx context.Context, token string) ([]model.Product, error)
	UpdateStock(ctx context.Context, token string, productID int64, quantity int) error
	ListUsers(ctx context.Context, token string) ([]model.AdminUser, error)
	ToggleUser(ctx context.Context, token string, userID int64) (string, error)
	ListAllOrders(ctx context.Context, token string) ([]model.Order, error)
}

type Options struct {
	Controller      *app.Controller
	Backend         Backend
	Timeout         time.Duration
	ShippingAddress string
	NoColor         bool
}

type Model struct {
	ctrl           *app.Controller
	backend        Backend
	timeout        time.Duration
	defaultAddress string

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	md      *glamour.TermRenderer

	width   int
	height  int
	shown   router.View
	pending int
	notice  app.Notice
	form    *form
	initCmd tea.Cmd

	catalog       model.Catalog
	catalogLoaded bool
	category      int // 0 is all, otherwise index+1 into catalog.Categories
	cursor        int

	cartCursor int

	orders []model.Order

	boardTab         int
	boardCursor      int
	supplierOrders   []model.Order
	supplierProducts []model.Product
	users            []model.AdminUser
	allOrders        []model.Order
}

// New builds the model. The controller should already be started.
func New(opts Options) *Model {
	if opts.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &Model{
		ctrl:           opts.Controller,
		backend:        opts.Backend,
		timeout:        opts.Timeout,
		defaultAddress: opts.ShippingAddress,
		keys:           keys,
		help:           help.New(),
		spinner:        s,
		md:             NewMarkdownRenderer(72, opts.NoColor),
	}
	m.initCmd = m.settle()
	return m
}

func (m *Model) Init() tea.Cmd {
	cmd := m.initCmd
	m.initCmd = nil
	return cmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.form != nil {
			cmds = append(cmds, m.updateForm(msg))
			break
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.navigate(msg) {
			break
		}
		cmds = append(cmds, m.updateView(msg))

	default:
		cmds = append(cmds, m.handleResult(msg))
		if m.form != nil {
			cmds = append(cmds, m.form.update(msg))
		}
	}

	cmds = append(cmds, m.settle())
	return m, tea.Batch(cmds...)
}

// settle applies any redirect and prepares the view about to be shown.
func (m *Model) settle() tea.Cmd {
	m.ctrl.Settle()
	v := m.ctrl.View()
	if v == m.shown {
		return nil
	}
	m.shown = v
	return m.enter(v)
}

func (m *Model) enter(v router.View) tea.Cmd {
	m.form = nil
	m.boardTab, m.boardCursor = 0, 0

	switch v {
	case router.Home, router.Products:
		m.cursor = 0
		if !m.catalogLoaded {
			return m.loadCatalog()
		}
	case router.Login:
		m.form = newForm(formLogin, "Login",
			field{label: "Username"},
			field{label: "Password", secret: true},
		)
	case router.Register:
		m.form = newForm(formRegister, "Register",
			field{label: "Username"},
			field{label: "Email"},
			field{label: "Password", secret: true},
			field{label: "Role", placeholder: "customer or supplier", value: "customer"},
		)
	case router.Cart:
		m.cartCursor = clamp(m.cartCursor, m.ctrl.Cart().Len())
	case router.Orders:
		return m.loadOrders()
	case router.SupplierDashboard:
		return m.loadSupplier()
	case router.AdminDashboard:
		return m.loadAdmin()
	}
	return nil
}

// navigate handles the global view keys.
func (m *Model) navigate(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Home):
		m.ctrl.Navigate(router.Home)
	case key.Matches(msg, m.keys.Products):
		m.ctrl.Navigate(router.Products)
	case key.Matches(msg, m.keys.Cart):
		m.ctrl.Navigate(router.Cart)
	case key.Matches(msg, m.keys.Orders):
		m.ctrl.Navigate(router.Orders)
	case key.Matches(msg, m.keys.Board):
		m.ctrl.Navigate(router.LandingView(m.ctrl.Session().Role()))
	case key.Matches(msg, m.keys.Login):
		m.ctrl.Navigate(router.Login)
	case key.Matches(msg, m.keys.Register):
		m.ctrl.Navigate(router.Register)
	case key.Matches(msg, m.keys.Logout):
		if !m.ctrl.Session().Authenticated() {
			return true
		}
		m.notice = m.ctrl.Logout()
		m.orders, m.supplierOrders, m.supplierProducts = nil, nil, nil
		m.users, m.allOrders = nil, nil
		m.shown = ""
	case key.Matches(msg, m.keys.Back):
		m.ctrl.Navigate(router.Home)
	default:
		return false
	}
	return true
}

func (m *Model) updateView(msg tea.KeyMsg) tea.Cmd {
	switch m.shown {
	case router.Home, router.Products:
		return m.updateCatalog(msg)
	case router.Cart:
		return m.updateCart(msg)
	case router.Orders:
		if key.Matches(msg, m.keys.Refresh) {
			return m.loadOrders()
		}
	case router.SupplierDashboard:
		return m.updateSupplier(msg)
	case router.AdminDashboard:
		return m.updateAdmin(msg)
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	f := m.form
	switch msg.Type {
	case tea.KeyEsc:
		m.form = nil
		if f.kind == formLogin || f.kind == formRegister {
			m.ctrl.Navigate(router.Home)
		}
		return nil
	case tea.KeyTab, tea.KeyDown:
		f.move(1)
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.move(-1)
		return nil
	case tea.KeyEnter:
		if !f.onLast() {
			f.move(1)
			return nil
		}
		return m.submit(f)
	}
	return f.update(msg)
}

func (m *Model) submit(f *form) tea.Cmd {
	switch f.kind {
	case formLogin:
		return m.submitLogin(f)
	case formRegister:
		return m.submitRegister(f)
	case formAddress:
		return m.submitCheckout(f)
	case formShip:
		return m.submitShipment(f)
	case formStock:
		return m.submitStock(f)
	}
	return nil
}

// handleResult applies the outcome of a boundary call.
func (m *Model) handleResult(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.done()
		m.applyCatalog(msg)
	case loginMsg:
		m.done()
		m.applyLogin(msg)
	case registerMsg:
		m.done()
		m.applyRegister(msg)
	case orderPlacedMsg:
		m.done()
		m.applyOrder(msg)
	case ordersLoadedMsg:
		m.done()
		m.applyOrders(msg)
	case supplierLoadedMsg:
		m.done()
		m.applySupplier(msg)
	case adminLoadedMsg:
		m.done()
		m.applyAdmin(msg)
	case shippedMsg:
		m.done()
		return m.applyShipped(msg)
	case stockUpdatedMsg:
		m.done()
		return m.applyStock(msg)
	case toggledMsg:
		m.done()
		return m.applyToggle(msg)
	}
	return nil
}

// Busy reports whether a boundary call is pending.
func (m *Model) Busy() bool { return m.pending > 0 }

// Notice is the status line message.
func (m *Model) Notice() app.Notice { return m.notice }

// Shown is the view currently on screen.
func (m *Model) Shown() router.View { return m.shown }

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
