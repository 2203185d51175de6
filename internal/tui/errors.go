// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"net/http"
	"strings"

	"github.com/okugula/work-kg-admin/internal/adapter"
	"github.com/okugula/work-kg-admin/internal/app"
	"github.com/okugula/work-kg-admin/internal/validators"
)

var formValidator = validators.NewFormInputValidator()

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	if errors.Is(err, adapter.ErrDecodeResponse) {
		return app.MsgBadResponse
	}

	return err.Error()
}

// isSessionExpired reports whether err is the backend rejecting the token.
func isSessionExpired(err error) bool {
	var reqErr *adapter.RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusUnauthorized
}

func validationMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrEmptyTitle):
		return app.MsgTitleRequired
	case errors.Is(err, validators.ErrInvalidPhone):
		return app.MsgInvalidPhone
	case errors.Is(err, validators.ErrFieldTooLong):
		return app.MsgValueTooLong + " (" + err.Error() + ")"
	case errors.Is(err, validators.ErrEmptyEmail), errors.Is(err, validators.ErrEmptyPassword):
		return app.MsgCredentialsRequired
	case errors.Is(err, validators.ErrInvalidEmail):
		return app.MsgInvalidEmail
	}
	return err.Error()
}
