package session_state_handler

import (
	"github.com/mathquizapp/mathquiz/internal/session"
)

// QuestionView is a question as shown to the quiz taker. The correct
// option never leaves the server.
type QuestionView struct {
	ID           int      `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
}

type ScoreView struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type SessionStateResponse struct {
	Step      string         `json:"step"`
	Username  string         `json:"username,omitempty"`
	Role      string         `json:"role,omitempty"`
	Grade     int            `json:"grade,omitempty"`
	Questions []QuestionView `json:"questions,omitempty"`
	Selected  map[int]string `json:"selected,omitempty"`
	Score     *ScoreView     `json:"score,omitempty"`
}

func NewSessionStateResponse(sess *session.Session) SessionStateResponse {
	resp := SessionStateResponse{
		Step:     sess.Step.String(),
		Username: sess.Username,
		Role:     sess.Role,
		Grade:    sess.Grade,
		Selected: sess.Selected,
	}
	if sess.Step == session.StepQuiz {
		for _, q := range sess.Questions {
			resp.Questions = append(resp.Questions, QuestionView{
				ID:           q.ID,
				QuestionText: q.QuestionText,
				Options:      q.Options,
			})
		}
		res := sess.Results()
		resp.Score = &ScoreView{Correct: res.Correct, Total: res.Total}
	}
	return resp
}
