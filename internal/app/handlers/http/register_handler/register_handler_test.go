package register_handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mathquizapp/mathquiz/internal/domain/model"
	questionsrepo "github.com/mathquizapp/mathquiz/internal/domain/questions/repository"
	questionssvc "github.com/mathquizapp/mathquiz/internal/domain/questions/service"
	rolesrepo "github.com/mathquizapp/mathquiz/internal/domain/roles/repository"
	usersrepo "github.com/mathquizapp/mathquiz/internal/domain/users/repository"
	userssvc "github.com/mathquizapp/mathquiz/internal/domain/users/service"
	"github.com/mathquizapp/mathquiz/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*RegisterHandler, *session.Controller) {
	t.Helper()

	roles := rolesrepo.NewMemoryRoleRepository()
	for _, name := range []string{model.RoleStudent, model.RoleAdmin} {
		_, err := roles.Ensure(context.Background(), name)
		require.NoError(t, err)
	}
	auth := userssvc.NewAuthService(usersrepo.NewMemoryUserRepository(), roles)
	questions := questionssvc.NewQuestionService(questionsrepo.NewMemoryQuestionRepository(), 1, 12)
	controller := session.NewController(auth, questions, session.NewStore())
	return NewRegisterHandler(controller), controller
}

func registerRequest(token, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/sessions/register", strings.NewReader(body))
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	return req
}

func TestServeHTTP_MissingToken(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, registerRequest("", `{"username":"alice","password":"secret"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServeHTTP_InvalidBody(t *testing.T) {
	handler, controller := newTestHandler(t)
	sess := controller.Begin()
	require.NoError(t, controller.Navigate(sess, session.ActionRegister))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, registerRequest(sess.Token, "{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeHTTP_RegistersAndAdvances(t *testing.T) {
	handler, controller := newTestHandler(t)
	sess := controller.Begin()
	require.NoError(t, controller.Navigate(sess, session.ActionRegister))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, registerRequest(sess.Token, `{"username":"alice","password":"secret"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, session.StepGradeSelect, sess.Step)
	assert.Contains(t, rec.Body.String(), `"step":"grade_select"`)
}

func TestServeHTTP_WrongStep(t *testing.T) {
	handler, controller := newTestHandler(t)
	sess := controller.Begin()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, registerRequest(sess.Token, `{"username":"alice","password":"secret"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServeHTTP_DuplicateUsername(t *testing.T) {
	handler, controller := newTestHandler(t)

	first := controller.Begin()
	require.NoError(t, controller.Navigate(first, session.ActionRegister))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, registerRequest(first.Token, `{"username":"alice","password":"secret"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	second := controller.Begin()
	require.NoError(t, controller.Navigate(second, session.ActionRegister))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, registerRequest(second.Token, `{"username":"alice","password":"other"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, session.StepRegister, second.Step)
}
