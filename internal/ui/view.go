package ui

import (
	"fmt"
	"strings"

	"storefront/internal/app"
	"storefront/internal/model"
	"storefront/internal/router"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var body string
	switch m.shown {
	case router.Home, router.Products:
		body = m.viewCatalog()
	case router.Login, router.Register:
		if m.form != nil {
			body = m.form.view()
		}
	case router.Cart:
		body = m.viewCart()
	case router.Orders:
		body = m.viewOrders()
	case router.SupplierDashboard:
		body = m.viewSupplier()
	case router.AdminDashboard:
		body = m.viewAdmin()
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewNav(),
		m.viewNotice(),
		body,
		helpStyle.Render(m.help.ShortHelpView(m.viewKeys())),
	))
}

func (m *Model) viewHeader() string {
	who := badgeStyle.Render("Guest")
	if u, ok := m.ctrl.Session().User(); ok {
		who = badgeStyle.Render(fmt.Sprintf("%s [%s]", u.Username, u.Role.Label()))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, brandStyle.Render("Storefront"), " ", who)
	if m.pending > 0 {
		header += " " + m.spinner.View()
	}
	return header
}

type navEntry struct {
	label string
	view  router.View
	b     key.Binding
}

func (m *Model) navEntries() []navEntry {
	s := m.ctrl.Session()
	entries := []navEntry{
		{"Home", router.Home, m.keys.Home},
		{"Products", router.Products, m.keys.Products},
	}
	switch s.Role() {
	case model.RoleCustomer:
		entries = append(entries,
			navEntry{fmt.Sprintf("Cart (%d)", m.ctrl.Cart().Len()), router.Cart, m.keys.Cart},
			navEntry{"My Orders", router.Orders, m.keys.Orders},
		)
	case model.RoleSupplier, model.RoleAdmin:
		entries = append(entries, navEntry{"Dashboard", router.LandingView(s.Role()), m.keys.Board})
	}
	if s.Authenticated() {
		entries = append(entries, navEntry{"Logout", "", m.keys.Logout})
	} else {
		entries = append(entries,
			navEntry{"Login", router.Login, m.keys.Login},
			navEntry{"Register", router.Register, m.keys.Register},
		)
	}
	return entries
}

func (m *Model) viewNav() string {
	var parts []string
	for _, e := range m.navEntries() {
		label := fmt.Sprintf("%s %s", e.b.Help().Key, e.label)
		if e.view != "" && e.view == m.shown {
			parts = append(parts, navActiveStyle.Render(label))
		} else {
			parts = append(parts, navStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) viewNotice() string {
	if m.notice.Empty() {
		return ""
	}
	switch m.notice.Level {
	case app.LevelError:
		return noticeErrorStyle.Render(m.notice.Text)
	case app.LevelSuccess:
		return noticeSuccessStyle.Render(m.notice.Text)
	default:
		return noticeInfoStyle.Render(m.notice.Text)
	}
}

// viewKeys lists the bindings that apply to the shown view.
func (m *Model) viewKeys() []key.Binding {
	k := m.keys
	if m.form != nil {
		return []key.Binding{k.Enter, k.Back}
	}
	switch m.shown {
	case router.Home, router.Products:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Add, k.Refresh, k.Quit}
	case router.Cart:
		return []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.Delete, withHelp(k.Enter, "checkout"), k.Quit}
	case router.Orders:
		return []key.Binding{k.Refresh, k.Quit}
	case router.SupplierDashboard:
		return []key.Binding{k.Up, k.Down, k.Tab, k.Ship, k.Stock, k.Refresh, k.Quit}
	case router.AdminDashboard:
		return []key.Binding{k.Up, k.Down, k.Tab, k.Toggle, k.Refresh, k.Quit}
	}
	return []key.Binding{k.Quit}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
