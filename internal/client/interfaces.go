// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/okugula/work-kg-admin/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the operator has logged in or quit.
	LoginFlow(ctx context.Context) (models.AdminUser, error)

	// MainLoop shows the dashboard and reports whether the operator logged
	// out.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
