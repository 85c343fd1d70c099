package session_state_handler

import (
	"net/http"

	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

// SessionStateHandler reports the current screen of a session along with
// everything the client needs to render it.
type SessionStateHandler struct {
	controller *session.Controller
}

func NewSessionStateHandler(controller *session.Controller) *SessionStateHandler {
	return &SessionStateHandler{controller: controller}
}

func (h *SessionStateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Lookup(r.Header.Get("X-Session-Token"))
	if sess == nil {
		httpError.ErrorResponse(w, http.StatusUnauthorized, "Unknown or missing session token")
		return
	}

	httpError.JSONResponse(w, http.StatusOK, NewSessionStateResponse(sess))
}
