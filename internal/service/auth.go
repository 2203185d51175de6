package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/okugula/work-kg-admin/internal/adapter"
	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/store"
	"github.com/okugula/work-kg-admin/models"
)

type authService struct {
	api adapter.AdminAPI
	// kv is nil when no durable storage is available.
	kv     store.KeyValueStore
	logger *logger.Logger
}

func NewAuthService(api adapter.AdminAPI, kv store.KeyValueStore, logger *logger.Logger) AuthService {
	return &authService{api: api, kv: kv, logger: logger}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.AdminUser, error) {
	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return models.AdminUser{}, err
	}

	// the profile cache only feeds RestoreSession; failing to write it does
	// not invalidate the login
	if err = a.cacheProfile(ctx, resp.User); err != nil {
		a.logger.Warn().Err(err).Str("func", "authService.Login").Msg("failed to cache admin profile")
	}

	return resp.User, nil
}

func (a *authService) cacheProfile(ctx context.Context, user models.AdminUser) error {
	if a.kv == nil {
		return nil
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return errors.Join(
		a.kv.Set(ctx, store.UserKey, string(payload)),
		a.kv.Set(ctx, store.RoleKey, user.Role),
	)
}

func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	if a.api.GetToken(ctx) == "" {
		return models.Session{}, ErrNotAuthenticated
	}

	var session models.Session
	if a.kv == nil {
		return session, nil
	}

	if raw, err := a.kv.Get(ctx, store.UserKey); err == nil {
		if err = json.Unmarshal([]byte(raw), &session.User); err != nil {
			a.logger.Warn().Err(err).Str("func", "authService.RestoreSession").Msg("ignoring malformed cached profile")
			session.User = models.AdminUser{}
		}
	}

	if role, err := a.kv.Get(ctx, store.RoleKey); err == nil {
		session.Role = role
	} else {
		session.Role = session.User.Role
	}

	return session, nil
}

func (a *authService) Me(ctx context.Context) (models.AdminUser, error) {
	return a.api.GetMe(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
