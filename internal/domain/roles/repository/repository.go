package repository

import (
	"context"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// RoleRepository stores the closed set of application roles.
type RoleRepository interface {
	// GetByName returns the role with the given name, or nil when absent.
	GetByName(ctx context.Context, name string) (*model.Role, error)

	// GetByID returns the role with the given id.
	GetByID(ctx context.Context, id int) (*model.Role, error)

	// Ensure returns the role with the given name, creating it when absent.
	Ensure(ctx context.Context, name string) (*model.Role, error)
}
