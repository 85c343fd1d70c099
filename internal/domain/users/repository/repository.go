package repository

import (
	"context"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// UserRepository persists username/password-hash pairs.
type UserRepository interface {
	// GetByUsername returns the user with the given username, or nil when absent.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Create inserts a new user and returns it with its assigned id.
	Create(ctx context.Context, username, passwordHash string, roleID int) (*model.User, error)
}
