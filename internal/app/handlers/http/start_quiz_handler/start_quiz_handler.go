package start_quiz_handler

import (
	"encoding/json"
	"errors"
	"net/http"

	questionsService "github.com/mathquizapp/mathquiz/internal/domain/questions/service"
	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

type StartQuizRequest struct {
	Grade int `json:"grade"`
}

type QuestionView struct {
	ID           int      `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
}

type StartQuizResponse struct {
	Step      string         `json:"step"`
	Grade     int            `json:"grade"`
	Questions []QuestionView `json:"questions"`
}

// StartQuizHandler loads the question set for a grade and enters the quiz.
type StartQuizHandler struct {
	controller *session.Controller
}

func NewStartQuizHandler(controller *session.Controller) *StartQuizHandler {
	return &StartQuizHandler{controller: controller}
}

func (h *StartQuizHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Lookup(r.Header.Get("X-Session-Token"))
	if sess == nil {
		httpError.ErrorResponse(w, http.StatusUnauthorized, "Unknown or missing session token")
		return
	}

	var req StartQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.controller.StartQuiz(r.Context(), sess, req.Grade); err != nil {
		switch {
		case errors.Is(err, session.ErrWrongStep):
			httpError.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, questionsService.ErrValidation):
			httpError.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, session.ErrNoQuestions):
			httpError.ErrorResponse(w, http.StatusNotFound, err.Error())
		default:
			httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to start quiz")
		}
		return
	}

	resp := StartQuizResponse{Step: sess.Step.String(), Grade: sess.Grade}
	for _, q := range sess.Questions {
		resp.Questions = append(resp.Questions, QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.Options,
		})
	}
	httpError.JSONResponse(w, http.StatusOK, resp)
}
