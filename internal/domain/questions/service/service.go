package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	"github.com/mathquizapp/mathquiz/internal/domain/questions/repository"
)

var ErrValidation = errors.New("invalid question data")

// QuestionService manages the per-grade question bank.
type QuestionService struct {
	repo     repository.QuestionRepository
	minGrade int
	maxGrade int
}

// NewQuestionService creates a new QuestionService with the given grade bounds.
func NewQuestionService(repo repository.QuestionRepository, minGrade, maxGrade int) *QuestionService {
	return &QuestionService{repo: repo, minGrade: minGrade, maxGrade: maxGrade}
}

// GradeBounds returns the inclusive range of supported grades.
func (s *QuestionService) GradeBounds() (int, int) {
	return s.minGrade, s.maxGrade
}

// GetByGrade returns the question set for a grade in insertion order.
func (s *QuestionService) GetByGrade(ctx context.Context, grade int) ([]model.Question, error) {
	if grade < s.minGrade || grade > s.maxGrade {
		return nil, fmt.Errorf("%w: grade %d out of range %d..%d", ErrValidation, grade, s.minGrade, s.maxGrade)
	}
	questions, err := s.repo.GetByGrade(ctx, grade)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for grade %d: %w", grade, err)
	}
	return questions, nil
}

// AddQuestion validates and stores a new question, returning its id.
func (s *QuestionService) AddQuestion(ctx context.Context, q *model.Question) (int, error) {
	if q.QuestionText == "" || len(q.Options) == 0 || q.CorrectOption == "" {
		return 0, fmt.Errorf("%w: text, options and correct option are required", ErrValidation)
	}
	if q.Grade < s.minGrade || q.Grade > s.maxGrade {
		return 0, fmt.Errorf("%w: grade %d out of range %d..%d", ErrValidation, q.Grade, s.minGrade, s.maxGrade)
	}
	if !q.HasOption(q.CorrectOption) {
		return 0, fmt.Errorf("%w: correct option %q is not among the options", ErrValidation, q.CorrectOption)
	}

	questionID, err := s.repo.Insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("failed to add question: %w", err)
	}
	return questionID, nil
}

// SeedDefaults inserts the built-in question bank on an empty store.
// A store that already holds questions is left untouched.
func (s *QuestionService) SeedDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, seed := range defaultQuestions {
		q := &model.Question{
			Grade:         seed.grade,
			QuestionText:  seed.text,
			Options:       seed.options,
			CorrectOption: seed.correct,
		}
		if _, err := s.repo.Insert(ctx, q); err != nil {
			return fmt.Errorf("failed to seed question %q: %w", seed.text, err)
		}
	}
	slog.Info("seeded default questions", "count", len(defaultQuestions))
	return nil
}
