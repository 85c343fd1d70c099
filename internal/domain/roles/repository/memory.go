package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// MemoryRoleRepository is an in-memory RoleRepository.
type MemoryRoleRepository struct {
	mu     sync.RWMutex
	nextID int
	roles  map[string]*model.Role
}

// NewMemoryRoleRepository creates a new MemoryRoleRepository.
func NewMemoryRoleRepository() *MemoryRoleRepository {
	return &MemoryRoleRepository{nextID: 1, roles: make(map[string]*model.Role)}
}

func (r *MemoryRoleRepository) GetByName(_ context.Context, name string) (*model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[name]
	if !ok {
		return nil, nil
	}
	copied := *role
	return &copied, nil
}

func (r *MemoryRoleRepository) GetByID(_ context.Context, id int) (*model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, role := range r.roles {
		if role.ID == id {
			copied := *role
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("failed to get role by id: no role with id %d", id)
}

func (r *MemoryRoleRepository) Ensure(_ context.Context, name string) (*model.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role, ok := r.roles[name]; ok {
		copied := *role
		return &copied, nil
	}
	role := &model.Role{ID: r.nextID, Name: name}
	r.nextID++
	r.roles[name] = role
	copied := *role
	return &copied, nil
}
