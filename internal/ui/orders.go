package ui

import (
	"fmt"
	"strings"

	"storefront/internal/app"
	"storefront/internal/cart"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

func (m *Model) applyOrders(msg ordersLoadedMsg) {
	if msg.err != nil {
		m.notice = app.Notice{Text: apperrors.UserMessage(msg.err, "Could not fetch orders."), Level: app.LevelError}
		return
	}
	m.orders = msg.orders
}

func (m *Model) viewOrders() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("My Orders"))
	b.WriteString("\n")
	if len(m.orders) == 0 {
		b.WriteString(dimStyle.Render("You have no orders yet."))
		return b.String()
	}
	for _, o := range m.orders {
		b.WriteString(renderOrder(o, false))
		b.WriteString("\n")
	}
	return b.String()
}

func renderStatus(status string) string {
	switch status {
	case model.OrderStatusShipped:
		return shippedStyle.Render(status)
	case model.OrderStatusPending:
		return pendingStyle.Render(status)
	default:
		return status
	}
}

// renderOrder lists an order and its items. selected marks it with a cursor.
func renderOrder(o model.Order, selected bool) string {
	var b strings.Builder
	head := fmt.Sprintf("Order #%d  %s  %s  %s", o.ID, o.OrderDate.Format("2006-01-02 15:04"), renderStatus(o.Status), priceStyle.Render(cart.FormatMoney(o.TotalPrice)))
	if o.Customer != "" {
		head += dimStyle.Render("  for " + o.Customer)
	}
	b.WriteString(renderItem(head, selected))
	for _, it := range o.OrderItems {
		b.WriteString("\n")
		b.WriteString(itemStyle.Render(fmt.Sprintf("    %d x %s @ %s", it.Quantity, it.Product.Name, cart.FormatMoney(it.PriceAtPurchase))))
	}
	if o.ShippingAddress != "" {
		b.WriteString("\n")
		b.WriteString(itemStyle.Render(dimStyle.Render("    ship to " + o.ShippingAddress)))
	}
	if o.TrackingNumber != "" {
		b.WriteString("\n")
		b.WriteString(itemStyle.Render(dimStyle.Render(fmt.Sprintf("    %s tracking %s", o.ShippingCompany, o.TrackingNumber))))
	}
	return b.String()
}
