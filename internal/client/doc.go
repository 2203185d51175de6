// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive admin console runtime.
//
// It drives the session lifecycle: restore the cached session or log in,
// run the dashboard, and start over after logout.
package client
