package ui

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/app"
	"storefront/internal/cart"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) selectedLine() (cart.Line, bool) {
	lines := m.ctrl.Cart().Lines()
	if m.cartCursor < 0 || m.cartCursor >= len(lines) {
		return cart.Line{}, false
	}
	return lines[m.cartCursor], true
}

func (m *Model) updateCart(msg tea.KeyMsg) tea.Cmd {
	n := m.ctrl.Cart().Len()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cartCursor = clamp(m.cartCursor-1, n)
	case key.Matches(msg, m.keys.Down):
		m.cartCursor = clamp(m.cartCursor+1, n)
	case key.Matches(msg, m.keys.Inc):
		if l, ok := m.selectedLine(); ok {
			m.ctrl.Increment(l.ProductID)
		}
	case key.Matches(msg, m.keys.Dec):
		if l, ok := m.selectedLine(); ok {
			m.ctrl.Decrement(l.ProductID)
		}
	case key.Matches(msg, m.keys.Delete):
		if l, ok := m.selectedLine(); ok {
			m.ctrl.Remove(l.ProductID)
			m.cartCursor = clamp(m.cartCursor, m.ctrl.Cart().Len())
		}
	case key.Matches(msg, m.keys.Enter):
		return m.startCheckout()
	}
	return nil
}

// startCheckout asks for the shipping address. An empty cart is reported
// without asking.
func (m *Model) startCheckout() tea.Cmd {
	if m.ctrl.Cart().Len() == 0 || m.ctrl.Checkout().InFlight() {
		_, n, _ := m.ctrl.CheckoutStarted(m.defaultAddress)
		m.notice = n
		return nil
	}
	m.form = newForm(formAddress, "Shipping address",
		field{label: "Ship to", placeholder: "street, city", value: m.defaultAddress},
	)
	return nil
}

func (m *Model) submitCheckout(f *form) tea.Cmd {
	addr := f.values()[0]
	sub, n, ok := m.ctrl.CheckoutStarted(addr)
	m.notice = n
	if !ok {
		return nil
	}
	m.form = nil
	m.defaultAddress = addr
	submit := m.ctrl.SubmitOrder(sub)
	return m.call(func(ctx context.Context) tea.Msg {
		return orderPlacedMsg{outcome: submit(ctx)}
	})
}

func (m *Model) applyOrder(msg orderPlacedMsg) {
	n := m.ctrl.CheckoutFinished(msg.outcome)
	if n.Empty() {
		return
	}
	m.notice = n
	if n.Level == app.LevelSuccess {
		m.cartCursor = 0
		// stock levels changed
		m.catalogLoaded = false
	}
}

func (m *Model) viewCart() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Your Cart"))
	b.WriteString("\n")

	lines := m.ctrl.Cart().Lines()
	if len(lines) == 0 {
		b.WriteString(dimStyle.Render("Your cart is empty."))
		return b.String()
	}
	for i, l := range lines {
		row := fmt.Sprintf("%-24s %3d x %-9s = %s", l.Name, l.Quantity, cart.FormatMoney(l.UnitPrice), priceStyle.Render(cart.FormatMoney(l.Subtotal())))
		b.WriteString(renderItem(row, i == m.cartCursor))
		b.WriteString("\n")
	}
	b.WriteString(totalStyle.Render("Total: " + cart.FormatMoney(m.ctrl.Cart().Total())))
	if m.form != nil && m.form.kind == formAddress {
		b.WriteString("\n")
		b.WriteString(m.form.view())
	}
	return b.String()
}
