package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/add_question_handler"
	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/answer_handler"
	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/create_session_handler"
	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/login_handler"
	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/navigate_handler"
	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/register_handler"
	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/score_handler"
	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/session_state_handler"
	"github.com/mathquizapp/mathquiz/internal/app/handlers/http/start_quiz_handler"
	"github.com/mathquizapp/mathquiz/internal/domain/model"
	questionsRepo "github.com/mathquizapp/mathquiz/internal/domain/questions/repository"
	questionsService "github.com/mathquizapp/mathquiz/internal/domain/questions/service"
	rolesRepo "github.com/mathquizapp/mathquiz/internal/domain/roles/repository"
	usersRepo "github.com/mathquizapp/mathquiz/internal/domain/users/repository"
	usersService "github.com/mathquizapp/mathquiz/internal/domain/users/service"
	"github.com/mathquizapp/mathquiz/internal/infra/config"
	"github.com/mathquizapp/mathquiz/internal/session"
	"github.com/mathquizapp/mathquiz/middleware"
)

type Services struct {
	authService     *usersService.AuthService
	questionService *questionsService.QuestionService
}

type App struct {
	config *config.Config
	db     *Database
	server *http.Server

	Services
	controller *session.Controller
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	db, err := InitDatabase(configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		config: configImpl,
		db:     db,
	}

	if err := app.initServices(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return app, nil
}

// initServices wires repositories for the configured backend, provisions
// the fixed role set and seeds the built-in questions.
func (app *App) initServices(ctx context.Context) error {
	var (
		userRepo     usersRepo.UserRepository
		roleRepo     rolesRepo.RoleRepository
		questionRepo questionsRepo.QuestionRepository
	)

	switch app.config.Database.Driver {
	case "postgres":
		users := usersRepo.NewPostgresUserRepository(app.db.Pool)
		roles := rolesRepo.NewPostgresRoleRepository(app.db.Pool)
		questions := questionsRepo.NewPostgresQuestionRepository(app.db.Pool)
		for _, init := range []func(context.Context) error{roles.InitSchema, users.InitSchema, questions.InitSchema} {
			if err := init(ctx); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
		}
		userRepo, roleRepo, questionRepo = users, roles, questions
	case "sqlite":
		users := usersRepo.NewSQLiteUserRepository(app.db.SQL)
		roles := rolesRepo.NewSQLiteRoleRepository(app.db.SQL)
		questions := questionsRepo.NewSQLiteQuestionRepository(app.db.SQL)
		for _, init := range []func(context.Context) error{roles.InitSchema, users.InitSchema, questions.InitSchema} {
			if err := init(ctx); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
		}
		userRepo, roleRepo, questionRepo = users, roles, questions
	default:
		userRepo = usersRepo.NewMemoryUserRepository()
		roleRepo = rolesRepo.NewMemoryRoleRepository()
		questionRepo = questionsRepo.NewMemoryQuestionRepository()
	}

	for _, name := range []string{model.RoleStudent, model.RoleAdmin} {
		if _, err := roleRepo.Ensure(ctx, name); err != nil {
			return fmt.Errorf("failed to provision role %q: %w", name, err)
		}
	}

	app.authService = usersService.NewAuthService(userRepo, roleRepo)
	app.questionService = questionsService.NewQuestionService(questionRepo, app.config.Quiz.MinGrade, app.config.Quiz.MaxGrade)

	if err := app.questionService.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed questions: %w", err)
	}

	app.controller = session.NewController(app.authService, app.questionService, session.NewStore())
	return nil
}

// ListenAndServe starts the HTTP server.
func (app *App) ListenAndServe() error {
	mx := http.NewServeMux()

	mx.Handle("POST /sessions", create_session_handler.NewCreateSessionHandler(app.controller))
	mx.Handle("GET /sessions/current", session_state_handler.NewSessionStateHandler(app.controller))
	mx.Handle("POST /sessions/navigate", navigate_handler.NewNavigateHandler(app.controller))
	mx.Handle("POST /sessions/register", register_handler.NewRegisterHandler(app.controller))
	mx.Handle("POST /sessions/login", login_handler.NewLoginHandler(app.controller))
	mx.Handle("POST /sessions/quiz", start_quiz_handler.NewStartQuizHandler(app.controller))
	mx.Handle("POST /sessions/answers", answer_handler.NewAnswerHandler(app.controller))
	mx.Handle("GET /sessions/score", score_handler.NewScoreHandler(app.controller))
	mx.Handle("POST /questions", add_question_handler.NewAddQuestionHandler(app.controller))

	handler := middleware.Logger()(mx)
	handler = middleware.Recover()(handler)

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", app.config.Server.Host, app.config.Server.Port),
		Handler: handler,
	}

	return app.server.ListenAndServe()
}

// Shutdown stops the HTTP server and closes the database.
func (app *App) Shutdown(ctx context.Context) error {
	defer app.db.Close()
	if app.server == nil {
		return nil
	}
	return app.server.Shutdown(ctx)
}
