package navigate_handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

type NavigateRequest struct {
	Action string `json:"action"`
}

type NavigateResponse struct {
	Step string `json:"step"`
}

// NavigateHandler moves a session between screens.
type NavigateHandler struct {
	controller *session.Controller
}

func NewNavigateHandler(controller *session.Controller) *NavigateHandler {
	return &NavigateHandler{controller: controller}
}

func (h *NavigateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Lookup(r.Header.Get("X-Session-Token"))
	if sess == nil {
		httpError.ErrorResponse(w, http.StatusUnauthorized, "Unknown or missing session token")
		return
	}

	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.controller.Navigate(sess, req.Action); err != nil {
		switch {
		case errors.Is(err, session.ErrUnknownAction):
			httpError.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, session.ErrWrongStep):
			httpError.ErrorResponse(w, http.StatusConflict, err.Error())
		default:
			httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to navigate")
		}
		return
	}

	httpError.JSONResponse(w, http.StatusOK, NavigateResponse{Step: sess.Step.String()})
}
