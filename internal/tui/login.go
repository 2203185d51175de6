// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okugula/work-kg-admin/internal/service"
	"github.com/okugula/work-kg-admin/models"
)

// loginModel is the login screen. It renders the email and password inputs
// and dispatches an async login command on submit. On success the program
// quits with loggedIn set.
type loginModel struct {
	ctx       context.Context
	auth      service.AuthService
	buildInfo models.AppBuildInfo

	inputs        []textinput.Model
	focus         int
	submitting    bool
	errMsg        string
	showBuildInfo bool

	loggedIn bool
	user     models.AdminUser
}

func newLoginModel(ctx context.Context, auth service.AuthService, buildInfo models.AppBuildInfo) loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "admin@work.kg"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{
		ctx:       ctx,
		auth:      auth,
		buildInfo: buildInfo,
		inputs:    []textinput.Model{emailInput, passwordInput},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.loggedIn = true
		m.user = msg.user
		return m, tea.Quit

	case tea.KeyMsg:
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showBuildInfo = false
			}
			if key.Matches(msg, keys.forceQuit) {
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.forceQuit), key.Matches(msg, keys.esc):
			return m, tea.Quit
		case key.Matches(msg, keys.about):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.focus == 0 && m.inputs[1].Value() == "" {
				m.moveFocus(1)
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			req := models.LoginRequest{Email: email, Password: pass}
			if err := formValidator.Validate(m.ctx, req); err != nil {
				m.errMsg = validationMessage(err)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Вход...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage("WORK.KG ─ ВХОД В ПАНЕЛЬ", strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ enter: войти │ f1: о программе │ esc: выход"))
}

func (m loginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Login(ctx, email, pass)
		return loginResultMsg{user: user, err: err}
	}
}

func (m *loginModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
