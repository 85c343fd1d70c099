package login_handler

import (
	"encoding/json"
	"errors"
	"net/http"

	usersService "github.com/mathquizapp/mathquiz/internal/domain/users/service"
	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Step     string `json:"step"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginHandler verifies credentials and signs the session in.
type LoginHandler struct {
	controller *session.Controller
}

func NewLoginHandler(controller *session.Controller) *LoginHandler {
	return &LoginHandler{controller: controller}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Lookup(r.Header.Get("X-Session-Token"))
	if sess == nil {
		httpError.ErrorResponse(w, http.StatusUnauthorized, "Unknown or missing session token")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.controller.Login(r.Context(), sess, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, session.ErrWrongStep):
			httpError.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, usersService.ErrValidation):
			httpError.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usersService.ErrInvalidCredentials):
			httpError.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		default:
			httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	httpError.JSONResponse(w, http.StatusOK, LoginResponse{
		Step:     sess.Step.String(),
		Username: sess.Username,
		Role:     sess.Role,
	})
}
