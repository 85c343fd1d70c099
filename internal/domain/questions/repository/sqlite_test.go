package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *SQLiteQuestionRepository {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteQuestionRepository(db)
	require.NoError(t, repo.InitSchema(context.Background()))
	return repo
}

func TestSQLiteInsert_AssignsSequentialIDs(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, &model.Question{
		Grade:         1,
		QuestionText:  "What is 2 + 2?",
		Options:       []string{"3", "4", "5"},
		CorrectOption: "4",
	})
	require.NoError(t, err)

	second, err := repo.Insert(ctx, &model.Question{
		Grade:         1,
		QuestionText:  "What is 5 - 3?",
		Options:       []string{"1", "2", "3"},
		CorrectOption: "2",
	})
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

func TestSQLiteGetByGrade_RoundTripsOptions(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, &model.Question{
		Grade:         3,
		QuestionText:  "What is 5 * 2?",
		Options:       []string{"8", "9", "10"},
		CorrectOption: "10",
	})
	require.NoError(t, err)

	questions, err := repo.GetByGrade(ctx, 3)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is 5 * 2?", questions[0].QuestionText)
	assert.Equal(t, []string{"8", "9", "10"}, questions[0].Options)
	assert.Equal(t, "10", questions[0].CorrectOption)
	assert.False(t, questions[0].CreatedAt.IsZero())
}

func TestSQLiteGetByGrade_OrderedAndFiltered(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	texts := []string{"What is 1 + 1?", "What is 2 + 2?", "What is 3 + 3?"}
	for _, text := range texts {
		_, err := repo.Insert(ctx, &model.Question{
			Grade:         2,
			QuestionText:  text,
			Options:       []string{"2", "4", "6"},
			CorrectOption: "4",
		})
		require.NoError(t, err)
	}
	_, err := repo.Insert(ctx, &model.Question{
		Grade:         5,
		QuestionText:  "What is 18 / 2?",
		Options:       []string{"7", "8", "9"},
		CorrectOption: "9",
	})
	require.NoError(t, err)

	questions, err := repo.GetByGrade(ctx, 2)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	for i, q := range questions {
		assert.Equal(t, texts[i], q.QuestionText)
	}

	empty, err := repo.GetByGrade(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteCount(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.Insert(ctx, &model.Question{
		Grade:         1,
		QuestionText:  "What is 2 + 2?",
		Options:       []string{"3", "4", "5"},
		CorrectOption: "4",
	})
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
