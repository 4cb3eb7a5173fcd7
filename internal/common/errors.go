// Package common defines shared constants and sentinel errors used across
// the admin console client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport / server errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// Client-side validation errors (never reach the network).
	ErrValidation = errors.New("validation error")

	// Configuration errors.
	ErrMissingBaseURL = errors.New("api base url is not configured")
)
