// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" if err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyError maps a driver error to the sentinel it stands for and keeps
// the underlying error in the chain.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - sql.ErrNoRows                                  → [ErrNotFound]
//   - 23505 unique_violation                         → [ErrAlreadyExists]
//   - 22P02 invalid_text_representation, 22003,
//     23502 not_null_violation, 23514 check_violation → [ErrInvalidValue]
//
// Anything else is wrapped with fallback.
func classifyError(err error, fallback error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

// DatabaseMessage returns the message PostgreSQL attached to err, if err
// carries a PostgreSQL error.
func DatabaseMessage(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message, true
	}

	return "", false
}
