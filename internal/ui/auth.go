package ui

import (
	"context"

	"storefront/internal/app"
	"storefront/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) submitLogin(f *form) tea.Cmd {
	v := f.values()
	username, password := v[0], v[1]
	if username == "" || password == "" {
		m.notice = app.Notice{Text: "Please enter a username and password.", Level: app.LevelError}
		return nil
	}
	ctrl := m.ctrl
	return m.call(func(ctx context.Context) tea.Msg {
		res, err := ctrl.Authenticate(ctx, username, password)
		return loginMsg{result: res, err: err}
	})
}

func (m *Model) applyLogin(msg loginMsg) {
	if msg.err != nil {
		m.notice = m.ctrl.LoginFailed(msg.err)
		if m.form != nil && m.form.kind == formLogin {
			m.form.set(1, "")
		}
		return
	}
	m.notice = m.ctrl.LoginSucceeded(msg.result)
}

func (m *Model) submitRegister(f *form) tea.Cmd {
	v := f.values()
	username, email, password := v[0], v[1], v[2]
	if username == "" || email == "" || password == "" {
		m.notice = app.Notice{Text: "Username, email and password are required.", Level: app.LevelError}
		return nil
	}
	role, ok := model.ParseRole(v[3])
	if !ok || role == model.RoleAdmin {
		m.notice = app.Notice{Text: "Role must be customer or supplier.", Level: app.LevelError}
		return nil
	}
	ctrl := m.ctrl
	return m.call(func(ctx context.Context) tea.Msg {
		return registerMsg{err: ctrl.Register(ctx, username, email, password, role)}
	})
}

func (m *Model) applyRegister(msg registerMsg) {
	if msg.err != nil {
		m.notice = m.ctrl.RegisterFailed(msg.err)
		return
	}
	m.notice = m.ctrl.RegisterSucceeded()
}
