package ui

import (
	"context"

	"storefront/internal/app"
	"storefront/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Results of boundary calls. Each is delivered to Update.
type (
	catalogLoadedMsg struct {
		catalog model.Catalog
		err     error
	}

	loginMsg struct {
		result model.AuthResult
		err    error
	}

	registerMsg struct {
		err error
	}

	orderPlacedMsg struct {
		outcome app.OrderOutcome
	}

	ordersLoadedMsg struct {
		orders []model.Order
		err    error
	}

	supplierLoadedMsg struct {
		orders   []model.Order
		products []model.Product
		err      error
	}

	adminLoadedMsg struct {
		users  []model.AdminUser
		orders []model.Order
		err    error
	}

	shippedMsg struct {
		order model.Order
		err   error
	}

	stockUpdatedMsg struct {
		err error
	}

	toggledMsg struct {
		message string
		err     error
	}
)

// call runs fn on a tea.Cmd goroutine with the configured timeout and counts
// it as pending until its message is handled.
func (m *Model) call(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	timeout := m.timeout
	run := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fn(ctx)
	}
	m.pending++
	if m.pending == 1 {
		return tea.Batch(run, m.spinner.Tick)
	}
	return run
}

func (m *Model) done() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m *Model) loadCatalog() tea.Cmd {
	backend := m.backend
	return m.call(func(ctx context.Context) tea.Msg {
		c, err := backend.LoadCatalog(ctx)
		return catalogLoadedMsg{catalog: c, err: err}
	})
}

func (m *Model) loadOrders() tea.Cmd {
	backend, token := m.backend, m.ctrl.Session().Token()
	return m.call(func(ctx context.Context) tea.Msg {
		orders, err := backend.ListOrders(ctx, token)
		return ordersLoadedMsg{orders: orders, err: err}
	})
}

func (m *Model) loadSupplier() tea.Cmd {
	backend, token := m.backend, m.ctrl.Session().Token()
	return m.call(func(ctx context.Context) tea.Msg {
		var msg supplierLoadedMsg
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.orders, err = backend.ListOrders(ctx, token)
			return err
		})
		g.Go(func() error {
			var err error
			msg.products, err = backend.MyProducts(ctx, token)
			return err
		})
		msg.err = g.Wait()
		return msg
	})
}

func (m *Model) loadAdmin() tea.Cmd {
	backend, token := m.backend, m.ctrl.Session().Token()
	return m.call(func(ctx context.Context) tea.Msg {
		var msg adminLoadedMsg
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.users, err = backend.ListUsers(ctx, token)
			return err
		})
		g.Go(func() error {
			var err error
			msg.orders, err = backend.ListAllOrders(ctx, token)
			return err
		})
		msg.err = g.Wait()
		return msg
	})
}
