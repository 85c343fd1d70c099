package service

import (
	"context"
	"testing"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	rolesrepo "github.com/mathquizapp/mathquiz/internal/domain/roles/repository"
	usersrepo "github.com/mathquizapp/mathquiz/internal/domain/users/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*AuthService, *usersrepo.MemoryUserRepository) {
	t.Helper()
	roles := rolesrepo.NewMemoryRoleRepository()
	for _, name := range []string{model.RoleStudent, model.RoleAdmin} {
		_, err := roles.Ensure(context.Background(), name)
		require.NoError(t, err)
	}
	users := usersrepo.NewMemoryUserRepository()
	return NewAuthService(users, roles), users
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	stored, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestRegister_EmptyFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "secret")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestRegister_RoleAssignment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	student, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	name, err := svc.RoleName(ctx, student)
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, name)

	admin, err := svc.Register(ctx, "admin", "secret")
	require.NoError(t, err)
	name, err = svc.RoleName(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, name)
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
