package service

import (
	"context"
	"testing"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	"github.com/mathquizapp/mathquiz/internal/domain/questions/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*QuestionService, *repository.MemoryQuestionRepository) {
	repo := repository.NewMemoryQuestionRepository()
	return NewQuestionService(repo, 1, 12), repo
}

func TestSeedDefaults_FillsEveryGrade(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaultQuestions), count)

	for grade := 1; grade <= 12; grade++ {
		questions, err := svc.GetByGrade(ctx, grade)
		require.NoError(t, err)
		assert.Len(t, questions, 5, "grade %d", grade)
		for _, q := range questions {
			assert.True(t, q.HasOption(q.CorrectOption), "question %q", q.QuestionText)
		}
	}
}

func TestSeedDefaults_SkipsNonEmptyStore(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := repo.Insert(ctx, &model.Question{
		Grade:         1,
		QuestionText:  "What is 1 + 1?",
		Options:       []string{"1", "2", "3"},
		CorrectOption: "2",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SeedDefaults(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSeedDefaults_SecondRunIsNoOp(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))
	require.NoError(t, svc.SeedDefaults(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaultQuestions), count)
}

func TestGetByGrade_PreservesInsertionOrder(t *testing.T) {
	svc, repo := newTestService()
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

	questions, err := svc.GetByGrade(ctx, 2)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	for i, q := range questions {
		assert.Equal(t, texts[i], q.QuestionText)
	}
}

func TestGetByGrade_OutOfRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByGrade(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.GetByGrade(context.Background(), 13)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddQuestion_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	valid := model.Question{
		Grade:         4,
		QuestionText:  "What is 2 * 3?",
		Options:       []string{"5", "6", "7"},
		CorrectOption: "6",
	}

	q := valid
	q.QuestionText = ""
	_, err := svc.AddQuestion(ctx, &q)
	assert.ErrorIs(t, err, ErrValidation)

	q = valid
	q.Options = nil
	_, err = svc.AddQuestion(ctx, &q)
	assert.ErrorIs(t, err, ErrValidation)

	q = valid
	q.Grade = 13
	_, err = svc.AddQuestion(ctx, &q)
	assert.ErrorIs(t, err, ErrValidation)

	q = valid
	q.CorrectOption = "8"
	_, err = svc.AddQuestion(ctx, &q)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddQuestion_Stores(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	id, err := svc.AddQuestion(ctx, &model.Question{
		Grade:         4,
		QuestionText:  "What is 2 * 3?",
		Options:       []string{"5", "6", "7"},
		CorrectOption: "6",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	questions, err := svc.GetByGrade(ctx, 4)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, id, questions[0].ID)
	assert.Equal(t, []string{"5", "6", "7"}, questions[0].Options)
}
