package session

import (
	"github.com/mathquizapp/mathquiz/internal/domain/model"
)

// Step is the screen a session is currently on. The flow only ever moves
// between adjacent steps; Controller.Navigate enforces the transitions.
type Step int

const (
	StepLoginOrRegister Step = iota
	StepRegister
	StepLogin
	StepGradeSelect
	StepQuiz
)

func (s Step) String() string {
	switch s {
	case StepLoginOrRegister:
		return "login_or_register"
	case StepRegister:
		return "register"
	case StepLogin:
		return "login"
	case StepGradeSelect:
		return "grade_select"
	case StepQuiz:
		return "quiz"
	default:
		return "unknown"
	}
}

// Session is the ephemeral per-visitor state. It lives only in memory;
// restarting the server drops all sessions but never touches accounts
// or questions.
type Session struct {
	Token    string
	Username string
	Role     string
	Step     Step
	Grade    int

	// Questions is the fixed set shown for the chosen grade.
	// Selected maps question id to the option the user picked;
	// answers may be changed at any time while the quiz is open.
	Questions []model.Question
	Selected  map[int]string
}

// Result is the live score over the current question set.
type Result struct {
	Correct int
	Total   int
}

// Results recomputes the score from the selected answers. Unanswered
// questions simply count as not correct.
func (s *Session) Results() Result {
	res := Result{Total: len(s.Questions)}
	for _, q := range s.Questions {
		if s.Selected[q.ID] == q.CorrectOption {
			res.Correct++
		}
	}
	return res
}

func (s *Session) resetQuiz() {
	s.Grade = 0
	s.Questions = nil
	s.Selected = nil
}
