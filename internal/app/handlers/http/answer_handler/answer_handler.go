package answer_handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

type AnswerRequest struct {
	QuestionID int    `json:"question_id"`
	Option     string `json:"option"`
}

type AnswerResponse struct {
	Correct bool `json:"correct"`
	Score   struct {
		Correct int `json:"correct"`
		Total   int `json:"total"`
	} `json:"score"`
}

// AnswerHandler records a picked option and returns the updated score.
type AnswerHandler struct {
	controller *session.Controller
}

func NewAnswerHandler(controller *session.Controller) *AnswerHandler {
	return &AnswerHandler{controller: controller}
}

func (h *AnswerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Lookup(r.Header.Get("X-Session-Token"))
	if sess == nil {
		httpError.ErrorResponse(w, http.StatusUnauthorized, "Unknown or missing session token")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	correct, err := h.controller.Answer(sess, req.QuestionID, req.Option)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrWrongStep):
			httpError.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, session.ErrUnknownQuestion):
			httpError.ErrorResponse(w, http.StatusNotFound, err.Error())
		case errors.Is(err, session.ErrUnknownOption):
			httpError.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to record answer")
		}
		return
	}

	resp := AnswerResponse{Correct: correct}
	res := sess.Results()
	resp.Score.Correct = res.Correct
	resp.Score.Total = res.Total
	httpError.JSONResponse(w, http.StatusOK, resp)
}
