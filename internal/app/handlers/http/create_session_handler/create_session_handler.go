package create_session_handler

import (
	"net/http"

	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

type CreateSessionResponse struct {
	Token string `json:"token"`
	Step  string `json:"step"`
}

// CreateSessionHandler opens a fresh anonymous session.
type CreateSessionHandler struct {
	controller *session.Controller
}

func NewCreateSessionHandler(controller *session.Controller) *CreateSessionHandler {
	return &CreateSessionHandler{controller: controller}
}

func (h *CreateSessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Begin()

	httpError.JSONResponse(w, http.StatusCreated, CreateSessionResponse{
		Token: sess.Token,
		Step:  sess.Step.String(),
	})
}
