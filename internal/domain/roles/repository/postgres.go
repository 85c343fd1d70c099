package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// PostgresRoleRepository is the RoleRepository implementation backed by PostgreSQL.
type PostgresRoleRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRoleRepository creates a new PostgresRoleRepository.
func NewPostgresRoleRepository(db *pgxpool.Pool) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

// InitSchema creates the roles table if it does not exist.
func (r *PostgresRoleRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS roles (
			id SERIAL PRIMARY KEY,
			role_name TEXT NOT NULL UNIQUE
		)`)
	if err != nil {
		return fmt.Errorf("failed to create roles table: %w", err)
	}
	return nil
}

func (r *PostgresRoleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.QueryRow(ctx, "SELECT id, role_name FROM roles WHERE role_name=$1", name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}
	return &role, nil
}

func (r *PostgresRoleRepository) GetByID(ctx context.Context, id int) (*model.Role, error) {
	var role model.Role
	err := r.db.QueryRow(ctx, "SELECT id, role_name FROM roles WHERE id=$1", id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get role by id: %w", err)
	}
	return &role, nil
}

func (r *PostgresRoleRepository) Ensure(ctx context.Context, name string) (*model.Role, error) {
	role, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}

	var roleID int
	err = r.db.QueryRow(ctx, "INSERT INTO roles (role_name) VALUES ($1) RETURNING id", name).
		Scan(&roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return &model.Role{ID: roleID, Name: name}, nil
}
