package repository

import (
	"context"
	"strings"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// QuestionRepository persists quiz questions keyed by grade.
type QuestionRepository interface {
	// Insert stores a new question and returns its assigned id.
	Insert(ctx context.Context, q *model.Question) (int, error)

	// GetByGrade returns all questions for a grade in insertion order.
	// A grade with no questions yields an empty slice.
	GetByGrade(ctx context.Context, grade int) ([]model.Question, error)

	// Count returns the total number of stored questions.
	Count(ctx context.Context) (int, error)
}

// Options live in a single comma-separated TEXT column. The join/split
// happens here and nowhere else; business logic only ever sees the
// ordered []string.

func encodeOptions(options []string) string {
	return strings.Join(options, ",")
}

func decodeOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
