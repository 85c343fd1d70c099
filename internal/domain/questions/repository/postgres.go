package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// PostgresQuestionRepository is the QuestionRepository implementation backed by PostgreSQL.
type PostgresQuestionRepository struct {
	db *pgxpool.Pool
}

// NewPostgresQuestionRepository creates a new PostgresQuestionRepository.
func NewPostgresQuestionRepository(db *pgxpool.Pool) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

// InitSchema creates the questions table if it does not exist.
func (r *PostgresQuestionRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			id SERIAL PRIMARY KEY,
			grade INTEGER NOT NULL,
			question_text TEXT NOT NULL,
			options TEXT NOT NULL,
			correct_option TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create questions table: %w", err)
	}
	return nil
}

// Insert stores a new question row.
func (r *PostgresQuestionRepository) Insert(ctx context.Context, q *model.Question) (int, error) {
	createdAt := q.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var questionID int
	err := r.db.QueryRow(ctx, `
		INSERT INTO questions (grade, question_text, options, correct_option, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		q.Grade, q.QuestionText, encodeOptions(q.Options), q.CorrectOption, createdAt).
		Scan(&questionID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	return questionID, nil
}

// GetByGrade returns all questions for a grade ordered by id.
func (r *PostgresQuestionRepository) GetByGrade(ctx context.Context, grade int) ([]model.Question, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, grade, question_text, options, correct_option, created_at
		FROM questions
		WHERE grade = $1
		ORDER BY id`, grade)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := make([]model.Question, 0)
	for rows.Next() {
		var q model.Question
		var rawOptions string
		if err := rows.Scan(&q.ID, &q.Grade, &q.QuestionText, &rawOptions, &q.CorrectOption, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Options = decodeOptions(rawOptions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return questions, nil
}

// Count returns the total number of stored questions.
func (r *PostgresQuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM questions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}
