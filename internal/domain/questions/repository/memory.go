package repository

import (
	"context"
	"sync"
	"time"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// MemoryQuestionRepository is an in-memory QuestionRepository preserving
// insertion order.
type MemoryQuestionRepository struct {
	mu        sync.RWMutex
	nextID    int
	questions []model.Question
}

// NewMemoryQuestionRepository creates a new MemoryQuestionRepository.
func NewMemoryQuestionRepository() *MemoryQuestionRepository {
	return &MemoryQuestionRepository{nextID: 1}
}

func (r *MemoryQuestionRepository) Insert(_ context.Context, q *model.Question) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *q
	stored.ID = r.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.Options = append([]string(nil), q.Options...)
	r.nextID++
	r.questions = append(r.questions, stored)
	return stored.ID, nil
}

func (r *MemoryQuestionRepository) GetByGrade(_ context.Context, grade int) ([]model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Question, 0)
	for _, q := range r.questions {
		if q.Grade == grade {
			copied := q
			copied.Options = append([]string(nil), q.Options...)
			result = append(result, copied)
		}
	}
	return result, nil
}

func (r *MemoryQuestionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions), nil
}
