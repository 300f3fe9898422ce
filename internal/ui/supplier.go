package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"storefront/internal/app"
	"storefront/internal/cart"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/router"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	tabOrders = iota
	tabSecond // products for suppliers, users for admins
)

func (m *Model) applySupplier(msg supplierLoadedMsg) {
	if msg.err != nil {
		m.notice = app.Notice{Text: apperrors.UserMessage(msg.err, "Could not load dashboard."), Level: app.LevelError}
		return
	}
	m.supplierOrders = msg.orders
	m.supplierProducts = msg.products
	m.boardCursor = clamp(m.boardCursor, m.boardLen())
}

func (m *Model) boardLen() int {
	switch {
	case m.shown == router.SupplierDashboard && m.boardTab == tabOrders:
		return len(m.supplierOrders)
	case m.shown == router.SupplierDashboard:
		return len(m.supplierProducts)
	case m.boardTab == tabOrders:
		return len(m.allOrders)
	default:
		return len(m.users)
	}
}

// moveBoard handles the keys shared by both dashboards.
func (m *Model) moveBoard(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.boardCursor = clamp(m.boardCursor-1, m.boardLen())
	case key.Matches(msg, m.keys.Down):
		m.boardCursor = clamp(m.boardCursor+1, m.boardLen())
	case key.Matches(msg, m.keys.Tab):
		m.boardTab = 1 - m.boardTab
		m.boardCursor = 0
	default:
		return false
	}
	return true
}

func (m *Model) updateSupplier(msg tea.KeyMsg) tea.Cmd {
	if m.moveBoard(msg) {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m.loadSupplier()
	case key.Matches(msg, m.keys.Ship) && m.boardTab == tabOrders:
		if m.boardCursor >= len(m.supplierOrders) {
			return nil
		}
		o := m.supplierOrders[m.boardCursor]
		if o.Status == model.OrderStatusShipped {
			m.notice = app.Notice{Text: fmt.Sprintf("Order #%d has already shipped.", o.ID), Level: app.LevelInfo}
			return nil
		}
		m.form = newForm(formShip, fmt.Sprintf("Ship order #%d", o.ID),
			field{label: "Tracking number"},
			field{label: "Shipping company"},
		)
		m.form.target = o.ID
	case key.Matches(msg, m.keys.Stock) && m.boardTab == tabSecond:
		if m.boardCursor >= len(m.supplierProducts) {
			return nil
		}
		p := m.supplierProducts[m.boardCursor]
		m.form = newForm(formStock, "Update stock for "+p.Name,
			field{label: "Quantity", value: strconv.Itoa(stockOf(p))},
		)
		m.form.target = p.ID
	}
	return nil
}

func (m *Model) submitShipment(f *form) tea.Cmd {
	v := f.values()
	if v[0] == "" || v[1] == "" {
		m.notice = app.Notice{Text: "Tracking number and shipping company are required.", Level: app.LevelError}
		return nil
	}
	m.form = nil
	backend, token, id := m.backend, m.ctrl.Session().Token(), f.target
	shipment := model.Shipment{TrackingNumber: v[0], ShippingCompany: v[1]}
	return m.call(func(ctx context.Context) tea.Msg {
		order, err := backend.ShipOrder(ctx, token, id, shipment)
		return shippedMsg{order: order, err: err}
	})
}

func (m *Model) applyShipped(msg shippedMsg) tea.Cmd {
	if msg.err != nil {
		m.notice = app.Notice{Text: apperrors.UserMessage(msg.err, "Failed to ship"), Level: app.LevelError}
		return nil
	}
	m.notice = app.Notice{Text: "Order Shipped!", Level: app.LevelSuccess}
	return m.loadSupplier()
}

func (m *Model) submitStock(f *form) tea.Cmd {
	qty, err := strconv.Atoi(f.values()[0])
	if err != nil || qty < 0 {
		m.notice = app.Notice{Text: "Quantity must be a whole number of zero or more.", Level: app.LevelError}
		return nil
	}
	m.form = nil
	backend, token, id := m.backend, m.ctrl.Session().Token(), f.target
	return m.call(func(ctx context.Context) tea.Msg {
		return stockUpdatedMsg{err: backend.UpdateStock(ctx, token, id, qty)}
	})
}

func (m *Model) applyStock(msg stockUpdatedMsg) tea.Cmd {
	if msg.err != nil {
		m.notice = app.Notice{Text: apperrors.UserMessage(msg.err, "Failed to update stock"), Level: app.LevelError}
		return nil
	}
	m.notice = app.Notice{Text: "Stock updated!", Level: app.LevelSuccess}
	m.catalogLoaded = false
	return m.loadSupplier()
}

func (m *Model) viewSupplier() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Supplier Dashboard"))
	b.WriteString("\n")
	b.WriteString(renderTabs([]string{"Orders", "My Products"}, m.boardTab))
	b.WriteString("\n\n")

	if m.boardTab == tabOrders {
		if len(m.supplierOrders) == 0 {
			b.WriteString(dimStyle.Render("No orders for your products yet."))
		}
		for i, o := range m.supplierOrders {
			b.WriteString(renderOrder(o, i == m.boardCursor))
			b.WriteString("\n")
		}
	} else {
		if len(m.supplierProducts) == 0 {
			b.WriteString(dimStyle.Render("You have no products listed."))
		}
		for i, p := range m.supplierProducts {
			row := fmt.Sprintf("%-24s %s  stock %d", p.Name, priceStyle.Render(cart.FormatMoney(p.Price)), stockOf(p))
			b.WriteString(renderItem(row, i == m.boardCursor))
			b.WriteString("\n")
		}
	}

	if m.form != nil {
		b.WriteString("\n")
		b.WriteString(m.form.view())
	}
	return b.String()
}

func renderTabs(names []string, active int) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if i == active {
			parts[i] = navActiveStyle.Render(n)
		} else {
			parts[i] = navStyle.Render(n)
		}
	}
	return strings.Join(parts, "  ")
}
