// Package tui is the Bubble Tea terminal front end of the admin console: a
// login screen and a tabbed dashboard with job editing.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/service"
	"github.com/okugula/work-kg-admin/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services        *service.ClientServices
	buildInfo       models.AppBuildInfo
	refreshInterval time.Duration
	logger          *logger.Logger
}

// New builds the terminal UI. A positive refreshInterval makes the
// dashboard reload itself in the background.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, refreshInterval time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		services:        services,
		buildInfo:       buildInfo,
		refreshInterval: refreshInterval,
		logger:          logger,
	}
}

// LoginFlow shows the login screen until the operator logs in or quits.
// Quitting returns [ErrUserQuit].
func (t *TUI) LoginFlow(ctx context.Context) (models.AdminUser, error) {
	model := newLoginModel(ctx, t.services.AuthService, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.AdminUser{}, err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return models.AdminUser{}, tea.ErrProgramKilled
	}
	if !result.loggedIn {
		return models.AdminUser{}, ErrUserQuit
	}

	return result.user, nil
}

// MainLoop runs the dashboard. It reports whether the operator asked to log
// out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newDashboardModel(ctx, t.services, session)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.RefreshJob.Start(ctx, t.refreshInterval, func(dash models.Dashboard, loadErr error) {
		p.Send(dashboardLoadedMsg{dash: dash, err: loadErr, background: true})
	})
	defer t.services.RefreshJob.Stop()

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	t.logger.Debug().Bool("logout", result.logout).Msg("dashboard closed")

	return result.logout, nil
}
