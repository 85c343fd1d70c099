package repository

import (
	"context"
	"sync"
	"time"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// MemoryUserRepository is an in-memory UserRepository.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int
	users  map[string]*model.User
}

// NewMemoryUserRepository creates a new MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: make(map[string]*model.User)}
}

func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, username, passwordHash string, roleID int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := &model.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		RoleID:       roleID,
		CreatedAt:    time.Now(),
	}
	r.nextID++
	r.users[username] = user
	copied := *user
	return &copied, nil
}
