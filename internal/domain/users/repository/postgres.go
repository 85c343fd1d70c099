package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// PostgresUserRepository is the UserRepository implementation backed by PostgreSQL.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// InitSchema creates the users table if it does not exist. Username uniqueness
// is enforced by the registration-time existence check, not by a constraint.
func (r *PostgresUserRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			role_id INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

// GetByUsername looks a user up by username.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx,
		"SELECT id, username, password, role_id, created_at FROM users WHERE username=$1", username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.RoleID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// Create inserts a new user row.
func (r *PostgresUserRepository) Create(ctx context.Context, username, passwordHash string, roleID int) (*model.User, error) {
	createdAt := time.Now()

	var userID int
	err := r.db.QueryRow(ctx,
		"INSERT INTO users (username, password, role_id, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		username, passwordHash, roleID, createdAt).
		Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &model.User{
		ID:           userID,
		Username:     username,
		PasswordHash: passwordHash,
		RoleID:       roleID,
		CreatedAt:    createdAt,
	}, nil
}
