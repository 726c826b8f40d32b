package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// When the failure originates in PostgreSQL the driver error stays in the
// chain and can be extracted with [errors.As].
var (
	// ErrNotFound is returned when a lookup, update or delete by id matches
	// no row.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when a write violates a unique
	// constraint (user email, customer name or email, order number).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrInvalidValue is returned when PostgreSQL rejects a value: a
	// malformed identifier, a NULL in a required column or a failed check
	// constraint.
	ErrInvalidValue = errors.New("invalid value")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
