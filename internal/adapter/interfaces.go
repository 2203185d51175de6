// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single point of contact with the work.kg admin
// backend.
//
// [AdminAPI] owns the session token: it keeps it in memory, mirrors it to a
// durable [store.KeyValueStore] and attaches it as a bearer token to every
// request once one is known. Non-2xx responses surface as [*RequestError],
// whose message is the plain-text body returned by the backend.
package adapter

import (
	"context"

	"github.com/okugula/work-kg-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/admin_api_mock.go -package=mock

// AdminAPI is the typed client of the admin REST API.
type AdminAPI interface {
	// SetToken replaces the session token. A non-empty token is persisted
	// under the "token" key; an empty one removes the persisted value. The
	// in-memory token is updated even when persisting fails.
	SetToken(ctx context.Context, token string) error

	// GetToken returns the cached token, falling back to durable storage.
	// It returns "" when no token is known.
	GetToken(ctx context.Context) string

	// Login posts credentials to /auth/login and adopts the returned token.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// GetMe returns the profile of the logged-in administrator.
	GetMe(ctx context.Context) (models.AdminUser, error)

	// Logout forgets the token and the cached profile. No request is sent.
	Logout(ctx context.Context) error

	GetJobs(ctx context.Context) ([]models.Job, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetResumes(ctx context.Context) ([]models.Resume, error)
	GetStats(ctx context.Context) (models.Stats, error)

	// CreateJob posts exactly the fields set in input.
	CreateJob(ctx context.Context, input models.JobInput) (models.Job, error)

	// UpdateJob puts exactly the fields set in input to /jobs/{id}.
	UpdateJob(ctx context.Context, id int64, input models.JobInput) (models.Job, error)

	// DeleteJob removes the job; the backend answers 204.
	DeleteJob(ctx context.Context, id int64) error
}
