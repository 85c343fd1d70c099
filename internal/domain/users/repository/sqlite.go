package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteUserRepository is the UserRepository implementation backed by SQLite.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// InitSchema creates the users table if it does not exist.
func (r *SQLiteUserRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			role_id INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

// GetByUsername looks a user up by username.
func (r *SQLiteUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password, role_id, created_at FROM users WHERE username = ?", username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.RoleID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// Create inserts a new user row.
func (r *SQLiteUserRepository) Create(ctx context.Context, username, passwordHash string, roleID int) (*model.User, error) {
	createdAt := time.Now()

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password, role_id, created_at) VALUES (?, ?, ?, ?)",
		username, passwordHash, roleID, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	userID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read user id: %w", err)
	}

	return &model.User{
		ID:           int(userID),
		Username:     username,
		PasswordHash: passwordHash,
		RoleID:       roleID,
		CreatedAt:    createdAt,
	}, nil
}
