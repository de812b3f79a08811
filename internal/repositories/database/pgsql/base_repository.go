package pgsql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isTransient reports whether err is a connection-level failure rather than a
// statement error. Class 08 covers connection exceptions; 57P03 is
// cannot_connect_now (server starting up or shutting down).
func isTransient(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") || pgErr.Code == "57P03"
	}
	return pgconn.Timeout(err)
}

// wrapQueryErr wraps a driver error, tagging transient connection failures
// with ErrStoreUnavailable so callers can treat them as retryable.
func wrapQueryErr(msg string, err error) error {
	if isTransient(err) {
		return fmt.Errorf("%s: %w: %w", msg, err, apperrors.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
