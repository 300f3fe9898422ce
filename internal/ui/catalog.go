package ui

import (
	"fmt"
	"strings"

	"storefront/internal/app"
	"storefront/internal/cart"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/router"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const banner = `# Welcome to the Storefront

Browse the catalog, add what you like to your **cart** and check out when
you are ready. Suppliers and admins get their own *dashboard*.`

func (m *Model) categoryID() int64 {
	if m.category == 0 || m.category > len(m.catalog.Categories) {
		return 0
	}
	return m.catalog.Categories[m.category-1].ID
}

func (m *Model) visibleProducts() []model.Product {
	return m.catalog.Filter(m.categoryID())
}

func (m *Model) selectedProduct() (model.Product, bool) {
	products := m.visibleProducts()
	if m.cursor < 0 || m.cursor >= len(products) {
		return model.Product{}, false
	}
	return products[m.cursor], true
}

func (m *Model) applyCatalog(msg catalogLoadedMsg) {
	if msg.err != nil {
		m.notice = app.Notice{Text: apperrors.UserMessage(msg.err, "Could not fetch products."), Level: app.LevelError}
		return
	}
	m.catalog = msg.catalog
	m.catalogLoaded = true
	m.category = clamp(m.category, len(m.catalog.Categories)+1)
	m.cursor = clamp(m.cursor, len(m.visibleProducts()))
}

func (m *Model) updateCatalog(msg tea.KeyMsg) tea.Cmd {
	n := len(m.visibleProducts())
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, n)
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, n)
	case key.Matches(msg, m.keys.Left):
		m.shiftCategory(-1)
	case key.Matches(msg, m.keys.Right):
		m.shiftCategory(1)
	case key.Matches(msg, m.keys.Refresh):
		return m.loadCatalog()
	case key.Matches(msg, m.keys.Add):
		p, ok := m.selectedProduct()
		if !ok {
			return nil
		}
		if !p.InStock() && m.ctrl.Session().Authenticated() {
			m.notice = app.Notice{Text: fmt.Sprintf("%s is out of stock.", p.Name), Level: app.LevelError}
			return nil
		}
		m.notice = m.ctrl.AddToCart(p)
	}
	return nil
}

func (m *Model) shiftCategory(delta int) {
	n := len(m.catalog.Categories) + 1
	m.category = (m.category + delta + n) % n
	m.cursor = 0
}

func (m *Model) viewCatalog() string {
	var b strings.Builder
	if m.shown == router.Home {
		b.WriteString(GenerateLogo())
		b.WriteString("\n")
		b.WriteString(RenderMarkdown(m.md, banner))
		b.WriteString("\n\n")
	}
	if !m.catalogLoaded {
		b.WriteString(dimStyle.Render("Loading products..."))
		return b.String()
	}

	b.WriteString(m.viewCategories())
	b.WriteString("\n\n")

	products := m.visibleProducts()
	if len(products) == 0 {
		b.WriteString(dimStyle.Render("No products in this category."))
		return b.String()
	}
	for i, p := range products {
		stock := dimStyle.Render(fmt.Sprintf("%d in stock", stockOf(p)))
		if !p.InStock() {
			stock = outStyle.Render("Out of Stock")
		}
		line := fmt.Sprintf("%-24s %s  %s  %s", p.Name, priceStyle.Render(cart.FormatMoney(p.Price)), dimStyle.Render(p.CategoryName()), stock)
		b.WriteString(renderItem(line, i == m.cursor))
		b.WriteString("\n")
	}

	if p, ok := m.selectedProduct(); ok {
		b.WriteString(m.viewProduct(p))
	}
	return b.String()
}

func (m *Model) viewCategories() string {
	names := []string{"All"}
	for _, c := range m.catalog.Categories {
		names = append(names, c.Name)
	}
	parts := make([]string, len(names))
	for i, n := range names {
		if i == m.category {
			parts[i] = navActiveStyle.Render(n)
		} else {
			parts[i] = navStyle.Render(n)
		}
	}
	return "Category: " + strings.Join(parts, " | ")
}

func (m *Model) viewProduct(p model.Product) string {
	var b strings.Builder
	b.WriteString(p.Name)
	if s := p.SupplierName(); s != "" {
		b.WriteString(dimStyle.Render(" by " + s))
	}
	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(RenderMarkdown(m.md, p.Description))
	}
	return detailStyle.Render(b.String())
}

func stockOf(p model.Product) int {
	if p.Inventory == nil {
		return 0
	}
	return p.Inventory.Quantity
}

func renderItem(line string, selected bool) string {
	if selected {
		return selectedItemStyle.Render("> " + line)
	}
	return itemStyle.Render(line)
}
