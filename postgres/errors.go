package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrEmptyConnectionString is returned when no DSN is configured.
	ErrEmptyConnectionString = errors.New("empty postgres connection string, set DATABASE_URL")
	// ErrFailedToOpenConnection is returned when connecting or pinging fails.
	ErrFailedToOpenConnection = errors.New("failed to open db connection")
	// ErrHealthcheckFailed is returned when the readiness ping fails.
	ErrHealthcheckFailed = errors.New("healthcheck failed, connection is not available")
	// ErrFailedToApplyMigrations is returned when goose cannot bring the
	// schema up to date.
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
)

// unique_violation per the PostgreSQL error code appendix.
const uniqueViolationCode = "23505"

// isDuplicateKeyError reports whether err is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
