package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/service"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: logger}
}

// Run restores the session or asks the operator to log in, then runs the
// dashboard. Logging out clears the session and starts over; quitting
// returns whatever the UI reported.
func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.services.AuthService.RestoreSession(ctx)
		if err != nil {
			if !errors.Is(err, service.ErrNotAuthenticated) {
				return fmt.Errorf("restore session: %w", err)
			}

			user, loginErr := a.ui.LoginFlow(ctx)
			if loginErr != nil {
				return loginErr
			}
			a.logger.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("operator logged in")

			session, err = a.services.AuthService.RestoreSession(ctx)
			if err != nil {
				return fmt.Errorf("restore session after login: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Msg("operator logged out")
	}
}
