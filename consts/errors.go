package consts

import "errors"

// Failure sentinels. Services wrap these with %w and a human-readable
// sentence; the handler boundary unwraps them to pick the HTTP status.
var (
	ErrNotFound             = errors.New("the requested record was not found")
	ErrValidation           = errors.New("the request failed validation")
	ErrConflict             = errors.New("the operation conflicts with existing records")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrInternal             = errors.New("an unexpected error occurred")
)
