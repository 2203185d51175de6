// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks operator input in the console forms before it is
// sent to the backend.
//
// The backend stays the authority on what it accepts. Values outside the
// local catalogs pass.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
