package register_handler

import (
	"encoding/json"
	"errors"
	"net/http"

	usersService "github.com/mathquizapp/mathquiz/internal/domain/users/service"
	"github.com/mathquizapp/mathquiz/internal/session"
	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Step     string `json:"step"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RegisterHandler creates an account and signs the session in.
type RegisterHandler struct {
	controller *session.Controller
}

func NewRegisterHandler(controller *session.Controller) *RegisterHandler {
	return &RegisterHandler{controller: controller}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := h.controller.Lookup(r.Header.Get("X-Session-Token"))
	if sess == nil {
		httpError.ErrorResponse(w, http.StatusUnauthorized, "Unknown or missing session token")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.controller.Register(r.Context(), sess, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, session.ErrWrongStep):
			httpError.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, usersService.ErrValidation):
			httpError.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usersService.ErrDuplicateUser):
			httpError.ErrorResponse(w, http.StatusConflict, err.Error())
		default:
			httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		}
		return
	}

	httpError.JSONResponse(w, http.StatusCreated, RegisterResponse{
		Step:     sess.Step.String(),
		Username: sess.Username,
		Role:     sess.Role,
	})
}
