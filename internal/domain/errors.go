package domain

import "errors"

// Shared error kinds. Use-cases wrap these with context (pkg/errors) and the
// HTTP layer maps them to status codes; errors.Is keeps working through the
// wrapping.
var (
	// ErrUnauthenticated means no identity could be resolved for the caller.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the identity resolved but a scope or ownership
	// check failed (e.g. an executive touching another area's sale).
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidRole means the identity carries a role the policy layer
	// does not know.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidHierarchy means a (zone, area, subArea) coordinate failed
	// canonical validation.
	ErrInvalidHierarchy = errors.New("invalid hierarchy coordinate")

	// ErrInvalidInput means a payload field is missing or malformed
	// (negative quantity, unknown milk type, zero date, empty remark).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means a referenced sale, remark or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness violation surfaced outside the upsert
	// paths. Under correct usage this is an internal-consistency bug, not a
	// user error.
	ErrConflict = errors.New("conflict")
)
