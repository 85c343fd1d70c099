package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	questionssvc "github.com/mathquizapp/mathquiz/internal/domain/questions/service"
	userssvc "github.com/mathquizapp/mathquiz/internal/domain/users/service"
)

var (
	ErrWrongStep       = errors.New("action is not available on the current step")
	ErrUnknownAction   = errors.New("unknown navigation action")
	ErrNoQuestions     = errors.New("no questions available for this grade")
	ErrUnknownQuestion = errors.New("question is not part of the current quiz")
	ErrUnknownOption   = errors.New("option is not offered for this question")
	ErrNotAllowed      = errors.New("operation requires the admin role")
)

// Navigation actions accepted by Navigate.
const (
	ActionRegister = "register"
	ActionLogin    = "login"
	ActionBack     = "back"
)

// Controller drives a session through the application flow: entry screen,
// register or login, grade selection, then the quiz itself. Every method
// checks the session step first so out-of-order requests fail instead of
// corrupting state.
type Controller struct {
	auth      *userssvc.AuthService
	questions *questionssvc.QuestionService
	sessions  *Store
}

// NewController creates a new Controller.
func NewController(auth *userssvc.AuthService, questions *questionssvc.QuestionService, sessions *Store) *Controller {
	return &Controller{auth: auth, questions: questions, sessions: sessions}
}

// Begin opens a fresh session at the entry step.
func (c *Controller) Begin() *Session {
	return c.sessions.Create()
}

// Lookup returns the session for a token, or nil when the token is unknown.
func (c *Controller) Lookup(token string) *Session {
	return c.sessions.Get(token)
}

// Navigate moves the session between screens without touching accounts
// or quiz data, with one exception: leaving the quiz drops the current
// question set so a re-entered quiz starts clean.
func (c *Controller) Navigate(sess *Session, action string) error {
	switch action {
	case ActionRegister:
		if sess.Step != StepLoginOrRegister {
			return ErrWrongStep
		}
		sess.Step = StepRegister
	case ActionLogin:
		if sess.Step != StepLoginOrRegister {
			return ErrWrongStep
		}
		sess.Step = StepLogin
	case ActionBack:
		switch sess.Step {
		case StepRegister, StepLogin, StepGradeSelect:
			sess.Step = StepLoginOrRegister
		case StepQuiz:
			sess.resetQuiz()
			sess.Step = StepGradeSelect
		default:
			return ErrWrongStep
		}
	default:
		return ErrUnknownAction
	}
	return nil
}

// Register creates an account and, on success, signs the session in and
// moves it straight to grade selection.
func (c *Controller) Register(ctx context.Context, sess *Session, username, password string) error {
	if sess.Step != StepRegister {
		return ErrWrongStep
	}

	user, err := c.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}
	return c.signIn(ctx, sess, user)
}

// Login verifies credentials and moves the session to grade selection.
func (c *Controller) Login(ctx context.Context, sess *Session, username, password string) error {
	if sess.Step != StepLogin {
		return ErrWrongStep
	}

	user, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return c.signIn(ctx, sess, user)
}

func (c *Controller) signIn(ctx context.Context, sess *Session, user *model.User) error {
	roleName, err := c.auth.RoleName(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to resolve role for %q: %w", user.Username, err)
	}
	sess.Username = user.Username
	sess.Role = roleName
	sess.Step = StepGradeSelect
	return nil
}

// StartQuiz loads the question set for a grade and enters the quiz.
// A grade without questions leaves the session on grade selection.
func (c *Controller) StartQuiz(ctx context.Context, sess *Session, grade int) error {
	if sess.Step != StepGradeSelect {
		return ErrWrongStep
	}

	questions, err := c.questions.GetByGrade(ctx, grade)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	sess.Grade = grade
	sess.Questions = questions
	sess.Selected = make(map[int]string, len(questions))
	sess.Step = StepQuiz
	return nil
}

// Answer records the picked option for a question and reports whether it
// is correct. Re-answering the same question overwrites the earlier pick.
func (c *Controller) Answer(sess *Session, questionID int, option string) (bool, error) {
	if sess.Step != StepQuiz {
		return false, ErrWrongStep
	}

	var question *model.Question
	for i := range sess.Questions {
		if sess.Questions[i].ID == questionID {
			question = &sess.Questions[i]
			break
		}
	}
	if question == nil {
		return false, ErrUnknownQuestion
	}
	if !question.HasOption(option) {
		return false, ErrUnknownOption
	}

	sess.Selected[questionID] = option
	return option == question.CorrectOption, nil
}

// Score returns the live score of the open quiz.
func (c *Controller) Score(sess *Session) (Result, error) {
	if sess.Step != StepQuiz {
		return Result{}, ErrWrongStep
	}
	return sess.Results(), nil
}

// AddQuestion lets a signed-in admin extend the question bank from the
// grade selection screen.
func (c *Controller) AddQuestion(ctx context.Context, sess *Session, q *model.Question) (int, error) {
	if sess.Step != StepGradeSelect {
		return 0, ErrWrongStep
	}
	if sess.Role != model.RoleAdmin {
		return 0, ErrNotAllowed
	}
	return c.questions.AddQuestion(ctx, q)
}
