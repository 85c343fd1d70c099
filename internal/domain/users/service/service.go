package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	rolesrepo "github.com/mathquizapp/mathquiz/internal/domain/roles/repository"
	usersrepo "github.com/mathquizapp/mathquiz/internal/domain/users/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrValidation         = errors.New("username and password must not be empty")
	ErrDuplicateUser      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// The account registered under this name gets the admin role.
const adminUsername = "admin"

// AuthService handles account registration and credential checks.
type AuthService struct {
	users usersrepo.UserRepository
	roles rolesrepo.RoleRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users usersrepo.UserRepository, roles rolesrepo.RoleRepository) *AuthService {
	return &AuthService{users: users, roles: roles}
}

// Register creates a new account with a bcrypt-hashed password.
// Registering a name that already exists returns ErrDuplicateUser.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roleName := model.RoleStudent
	if username == adminUsername {
		roleName = model.RoleAdmin
	}
	role, err := s.roles.GetByName(ctx, roleName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role %q: %w", roleName, err)
	}
	if role == nil {
		return nil, fmt.Errorf("role %q is not provisioned", roleName)
	}

	user, err := s.users.Create(ctx, username, string(hash), role.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns the matching user.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// RoleName resolves the role name for a user.
func (s *AuthService) RoleName(ctx context.Context, user *model.User) (string, error) {
	role, err := s.roles.GetByID(ctx, user.RoleID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}
	return role.Name, nil
}
