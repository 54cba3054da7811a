package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealshop/accounts/user"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("returns user with assigned id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		createdAt := time.Now()
		mock.ExpectQuery(`INSERT INTO users \(email, password_hash\)`).
			WithArgs("a@x.com", "deadbeef").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

		usr, err := repo.Create(context.Background(), "a@x.com", "deadbeef")

		require.NoError(t, err)
		assert.Equal(t, int64(1), usr.ID)
		assert.Equal(t, "a@x.com", usr.Email)
		assert.Equal(t, "deadbeef", usr.PasswordHash)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to ErrAlreadyExists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("a@x.com", "deadbeef").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		_, err := repo.Create(context.Background(), "a@x.com", "deadbeef")

		assert.ErrorIs(t, err, user.ErrAlreadyExists)
	})

	t.Run("propagates other store failures", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("a@x.com", "deadbeef").
			WillReturnError(assert.AnError)

		_, err := repo.Create(context.Background(), "a@x.com", "deadbeef")

		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, user.ErrAlreadyExists)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE email`).
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow(int64(7), "a@x.com", "deadbeef", time.Now()))

		usr, err := repo.GetByEmail(context.Background(), "a@x.com")

		require.NoError(t, err)
		assert.Equal(t, int64(7), usr.ID)
		assert.Equal(t, "deadbeef", usr.PasswordHash)
	})

	t.Run("absent row maps to ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE email`).
			WithArgs("nobody@x.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "nobody@x.com")

		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("absent row maps to ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE id`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}
