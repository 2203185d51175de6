// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the screen-facing operations of the admin console.
// Services sit between the terminal UI and [adapter.AdminAPI]: they keep the
// cached administrator profile in sync with the session, fetch the dashboard
// resources in parallel and route job edits to create or update.
package service

import (
	"context"
	"time"

	"github.com/okugula/work-kg-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages the administrator session.
type AuthService interface {
	// Login authenticates against the backend and caches the returned
	// profile and role in durable storage.
	Login(ctx context.Context, email, password string) (models.AdminUser, error)

	// RestoreSession returns [ErrNotAuthenticated] when no token is known.
	// Otherwise it returns whatever profile and role were cached at login;
	// a missing or unreadable cache is not an error.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Me fetches the current profile from the backend.
	Me(ctx context.Context) (models.AdminUser, error)

	// Logout forgets the session locally.
	Logout(ctx context.Context) error
}

// DashboardService loads everything the dashboard shows.
type DashboardService interface {
	// Load fetches jobs, users, resumes and stats concurrently. Each
	// resource's result or error is recorded in the returned dashboard; the
	// error joins every per-resource failure.
	Load(ctx context.Context) (models.Dashboard, error)
}

// JobService edits job postings.
type JobService interface {
	List(ctx context.Context) ([]models.Job, error)

	// Save creates the job when id is 0 and updates job id otherwise.
	Save(ctx context.Context, id int64, input models.JobInput) (models.Job, error)

	Delete(ctx context.Context, id int64) error
}

// RefreshJob reloads the dashboard in the background.
type RefreshJob interface {
	// Start stops any running job, then calls DashboardService.Load every
	// interval and hands each result to onLoad until ctx is cancelled or
	// Stop is called.
	Start(ctx context.Context, interval time.Duration, onLoad func(models.Dashboard, error))

	// Stop cancels the running job and waits for it to exit.
	Stop()
}
