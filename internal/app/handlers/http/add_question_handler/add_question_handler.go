package add_question_handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	questionsService "github.com/mathquizapp/mathquiz/internal/domain/questions/service"
	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

type AddQuestionRequest struct {
	Grade         int      `json:"grade"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
}

type AddQuestionResponse struct {
	ID int `json:"id"`
}

// AddQuestionHandler lets an admin extend the question bank.
type AddQuestionHandler struct {
	controller *session.Controller
}

func NewAddQuestionHandler(controller *session.Controller) *AddQuestionHandler {
	return &AddQuestionHandler{controller: controller}
}

func (h *AddQuestionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Lookup(r.Header.Get("X-Session-Token"))
	if sess == nil {
		httpError.ErrorResponse(w, http.StatusUnauthorized, "Unknown or missing session token")
		return
	}

	var req AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	questionID, err := h.controller.AddQuestion(r.Context(), sess, &model.Question{
		Grade:         req.Grade,
		QuestionText:  req.QuestionText,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrWrongStep):
			httpError.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, session.ErrNotAllowed):
			httpError.ErrorResponse(w, http.StatusForbidden, err.Error())
		case errors.Is(err, questionsService.ErrValidation):
			httpError.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to add question")
		}
		return
	}

	httpError.JSONResponse(w, http.StatusCreated, AddQuestionResponse{ID: questionID})
}
