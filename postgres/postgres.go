package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

// Connect opens a connection pool and verifies connectivity with retry and
// linear backoff, so simultaneous service restarts don't thunder-herd a
// recovering database.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.ConnectionString == "" {
		return nil, ErrEmptyConnectionString
	}

	db, err := sql.Open("pgx", cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenConnection, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var pingErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if pingErr = db.PingContext(ctx); pingErr == nil {
			return db, nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, errors.Join(ErrFailedToOpenConnection, ctx.Err())
		case <-time.After(cfg.RetryInterval * time.Duration(attempt)):
		}
	}

	_ = db.Close()
	return nil, errors.Join(ErrFailedToOpenConnection, pingErr)
}

// Healthcheck returns a probe function suitable for readiness endpoints.
func Healthcheck(db *sql.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
