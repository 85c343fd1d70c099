package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRoleRepository is the RoleRepository implementation backed by SQLite.
type SQLiteRoleRepository struct {
	db *sql.DB
}

// NewSQLiteRoleRepository creates a new SQLiteRoleRepository.
func NewSQLiteRoleRepository(db *sql.DB) *SQLiteRoleRepository {
	return &SQLiteRoleRepository{db: db}
}

// InitSchema creates the roles table if it does not exist.
func (r *SQLiteRoleRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS roles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			role_name TEXT NOT NULL UNIQUE
		)`)
	if err != nil {
		return fmt.Errorf("failed to create roles table: %w", err)
	}
	return nil
}

func (r *SQLiteRoleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.QueryRowContext(ctx, "SELECT id, role_name FROM roles WHERE role_name = ?", name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}
	return &role, nil
}

func (r *SQLiteRoleRepository) GetByID(ctx context.Context, id int) (*model.Role, error) {
	var role model.Role
	err := r.db.QueryRowContext(ctx, "SELECT id, role_name FROM roles WHERE id = ?", id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get role by id: %w", err)
	}
	return &role, nil
}

func (r *SQLiteRoleRepository) Ensure(ctx context.Context, name string) (*model.Role, error) {
	role, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}

	res, err := r.db.ExecContext(ctx, "INSERT INTO roles (role_name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	roleID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read role id: %w", err)
	}
	return &model.Role{ID: int(roleID), Name: name}, nil
}
