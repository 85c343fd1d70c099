package score_handler

import (
	"errors"
	"net/http"

	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

type ScoreResponse struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ScoreHandler returns the live score of the open quiz.
type ScoreHandler struct {
	controller *session.Controller
}

func NewScoreHandler(controller *session.Controller) *ScoreHandler {
	return &ScoreHandler{controller: controller}
}

func (h *ScoreHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Lookup(r.Header.Get("X-Session-Token"))
	if sess == nil {
		httpError.ErrorResponse(w, http.StatusUnauthorized, "Unknown or missing session token")
		return
	}

	res, err := h.controller.Score(sess)
	if err != nil {
		if errors.Is(err, session.ErrWrongStep) {
			httpError.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute score")
		return
	}

	httpError.JSONResponse(w, http.StatusOK, ScoreResponse{Correct: res.Correct, Total: res.Total})
}
