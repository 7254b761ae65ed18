package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Store failures surfaced to the services. Readers may degrade on them,
// writers must not.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrSchemaMissing    = errors.New("store schema missing")
	ErrSeatTaken        = errors.New("seat already taken")
)

// SQLSTATE codes the repositories care about
const (
	pgUniqueViolation   = "23505"
	pgUndefinedTable    = "42P01"
	pgUndefinedFunction = "42883"
	pgInsufficientPriv  = "42501"
)

// classify wraps a driver error with the matching store sentinel.
// Context errors are passed through untouched so callers can tell a
// deadline apart from an outage.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrSeatTaken, pgErr.Detail)
		case pgUndefinedTable, pgUndefinedFunction:
			return fmt.Errorf("%s: %w: %s", op, ErrSchemaMissing, pgErr.Message)
		case pgInsufficientPriv:
			return fmt.Errorf("%s: %w: %s", op, ErrStoreUnavailable, pgErr.Message)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}
