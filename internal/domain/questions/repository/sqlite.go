package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteQuestionRepository is the QuestionRepository implementation backed by SQLite.
type SQLiteQuestionRepository struct {
	db *sql.DB
}

// NewSQLiteQuestionRepository creates a new SQLiteQuestionRepository.
func NewSQLiteQuestionRepository(db *sql.DB) *SQLiteQuestionRepository {
	return &SQLiteQuestionRepository{db: db}
}

// InitSchema creates the questions table if it does not exist.
func (r *SQLiteQuestionRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			grade INTEGER NOT NULL,
			question_text TEXT NOT NULL,
			options TEXT NOT NULL,
			correct_option TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create questions table: %w", err)
	}
	return nil
}

// Insert stores a new question row.
func (r *SQLiteQuestionRepository) Insert(ctx context.Context, q *model.Question) (int, error) {
	createdAt := q.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO questions (grade, question_text, options, correct_option, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		q.Grade, q.QuestionText, encodeOptions(q.Options), q.CorrectOption, createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	questionID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read question id: %w", err)
	}
	return int(questionID), nil
}

// GetByGrade returns all questions for a grade ordered by id.
func (r *SQLiteQuestionRepository) GetByGrade(ctx context.Context, grade int) ([]model.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, grade, question_text, options, correct_option, created_at
		FROM questions
		WHERE grade = ?
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
func (r *SQLiteQuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}
