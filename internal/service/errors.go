package service

import "errors"

// Failure taxonomy. Every operation resolves to exactly one of these (or a
// *ValidationError); the HTTP layer maps them to status codes.
var (
	// ErrNotFound covers both "does not exist" and "exists but belongs to
	// someone else" so callers cannot probe for other users' resources.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is a uniqueness violation (username, per-user category name).
	ErrConflict = errors.New("resource already exists")

	// ErrUnauthorized is a credential mismatch.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrInternal marks a post-write invariant violation, such as a persisted
	// record coming back without an identifier.
	ErrInternal = errors.New("internal error")
)

// ValidationError reports malformed or out-of-range input detected before
// any persistence access.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(err error) *ValidationError {
	return &ValidationError{Reason: err.Error()}
}
