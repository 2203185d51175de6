package service

import "errors"

var (
	// ErrNotAuthenticated means no session token is available and the
	// operator has to log in.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidJobID is returned for negative job ids.
	ErrInvalidJobID = errors.New("invalid job id")
)
