package domain

import "errors"

// Sentinel errors shared across services and repositories. Handlers map
// these to HTTP status codes; everything else is treated as a storage
// failure and surfaces as a 500.
var (
	// ErrNotFound is returned when a record does not exist. History
	// deletion also returns it for entries owned by another user, so
	// callers cannot probe for the existence of foreign entries.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password. The message is identical on purpose.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
