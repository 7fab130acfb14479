// Package common defines shared constants and sentinel errors used across
// the client and server layers of LuConnect. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrUnavailable marks storage connectivity failures. It must never be
	// reported to callers as an authentication failure.
	ErrUnavailable = errors.New("service unavailable")

	// Credential errors.
	ErrDuplicateCredential = errors.New("username or email already registered")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrTooManyAttempts     = errors.New("too many login attempts")

	// Token errors.
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("could not validate credentials")
	ErrInvalidSubject = errors.New("invalid token subject")

	// Order errors.
	ErrInsufficientStock = errors.New("insufficient stock")
)
