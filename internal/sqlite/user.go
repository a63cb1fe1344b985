package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seojinp/projectboard/internal/domain/access"
	"github.com/seojinp/projectboard/internal/store"
)

// UserRepository implements store.UserRepository for SQLite
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Get retrieves a user record by ID.
func (r *UserRepository) Get(ctx context.Context, id string) (*access.User, error) {
	var u access.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, role FROM users WHERE id = ?`, id).Scan(&u.ID, &u.Email, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
