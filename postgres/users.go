package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dealshop/accounts/user"
)

// UserRepository implements user.Repository against the users table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a user repository over the given connection pool.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (user.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`

	usr := user.User{Email: email, PasswordHash: passwordHash}
	err := r.db.QueryRowContext(ctx, query, email, passwordHash).Scan(&usr.ID, &usr.CreatedAt)
	if isDuplicateKeyError(err) {
		return user.User{}, errors.Join(user.ErrAlreadyExists, err)
	}
	if err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return usr, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`

	var usr user.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&usr.ID, &usr.Email, &usr.PasswordHash, &usr.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}

	return usr, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`

	var usr user.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&usr.ID, &usr.Email, &usr.PasswordHash, &usr.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return usr, nil
}
