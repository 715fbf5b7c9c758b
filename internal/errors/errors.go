package errors

import "errors"

// This package defines a centralized set of sentinel errors for the
// application. Services return these without knowing about HTTP; the API
// layer checks them with errors.Is() and maps each to a stable status
// code and machine-readable error code.

var (
	// ErrNotFound signifies that a requested chat or commit could not be
	// located. Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrPermission signifies that the authenticated user does not own
	// the resolved chat or commit. Mapped to 403 Forbidden.
	ErrPermission = errors.New("permission denied")

	// ErrUpstreamTimeout signifies that reply generation exceeded its
	// configured bound. The user message remains in the log; only the
	// assistant reply is missing. Mapped to 504 Gateway Timeout.
	ErrUpstreamTimeout = errors.New("reply generation timed out")

	// ErrStorage signifies a persistence layer failure. It is always
	// surfaced: silently losing a commit would break the durability
	// guarantee of the store. Mapped to 500 Internal Server Error with
	// a distinct code.
	ErrStorage = errors.New("storage failure")

	// ErrInternal signifies an unexpected server-side error, used to
	// avoid leaking implementation details to the client. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)
