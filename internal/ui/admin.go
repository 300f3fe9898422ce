package ui

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/app"
	apperrors "storefront/internal/errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) applyAdmin(msg adminLoadedMsg) {
	if msg.err != nil {
		m.notice = app.Notice{Text: apperrors.UserMessage(msg.err, "Failed to fetch users"), Level: app.LevelError}
		return
	}
	m.users = msg.users
	m.allOrders = msg.orders
	m.boardCursor = clamp(m.boardCursor, m.boardLen())
}

func (m *Model) updateAdmin(msg tea.KeyMsg) tea.Cmd {
	if m.moveBoard(msg) {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m.loadAdmin()
	case key.Matches(msg, m.keys.Toggle) && m.boardTab == tabSecond:
		if m.boardCursor >= len(m.users) {
			return nil
		}
		backend, token, id := m.backend, m.ctrl.Session().Token(), m.users[m.boardCursor].ID
		return m.call(func(ctx context.Context) tea.Msg {
			message, err := backend.ToggleUser(ctx, token, id)
			return toggledMsg{message: message, err: err}
		})
	}
	return nil
}

func (m *Model) applyToggle(msg toggledMsg) tea.Cmd {
	if msg.err != nil {
		m.notice = app.Notice{Text: apperrors.UserMessage(msg.err, "Failed to update user status"), Level: app.LevelError}
		return nil
	}
	m.notice = app.Notice{Text: msg.message, Level: app.LevelSuccess}
	return m.loadAdmin()
}

func (m *Model) viewAdmin() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Admin Dashboard"))
	b.WriteString("\n")
	b.WriteString(renderTabs([]string{"All Orders", "Users"}, m.boardTab))
	b.WriteString("\n\n")

	if m.boardTab == tabOrders {
		if len(m.allOrders) == 0 {
			b.WriteString(dimStyle.Render("No orders yet."))
		}
		for i, o := range m.allOrders {
			b.WriteString(renderOrder(o, i == m.boardCursor))
			b.WriteString("\n")
		}
		return b.String()
	}

	for i, u := range m.users {
		state := shippedStyle.Render("enabled")
		if !u.Enabled {
			state = outStyle.Render("disabled")
		}
		row := fmt.Sprintf("%-16s %-28s %-10s %s", u.Username, u.Email, u.Role.Label(), state)
		b.WriteString(renderItem(row, i == m.boardCursor))
		b.WriteString("\n")
	}
	return b.String()
}
