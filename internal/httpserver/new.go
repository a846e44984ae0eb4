package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eisenhower-matrix/config"
	"eisenhower-matrix/internal/auth"
	"eisenhower-matrix/internal/contacts"
	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/internal/pomodoro"
	"eisenhower-matrix/internal/wizard"
	pkgLog "eisenhower-matrix/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment model.Environment

	authSvc       auth.Service
	matrixUC      matrix.UseCase
	wizardUC      wizard.UseCase
	contactsUC    contacts.UseCase
	pomodoroTimer *pomodoro.Timer
	rateLimit     config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment model.Environment

	AuthService   auth.Service
	MatrixUC      matrix.UseCase
	WizardUC      wizard.UseCase
	ContactsUC    contacts.UseCase
	PomodoroTimer *pomodoro.Timer
	RateLimit     config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		authSvc:       cfg.AuthService,
		matrixUC:      cfg.MatrixUC,
		wizardUC:      cfg.WizardUC,
		contactsUC:    cfg.ContactsUC,
		pomodoroTimer: cfg.PomodoroTimer,
		rateLimit:     cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Engine exposes the underlying router, mainly for httptest.
func (srv *HTTPServer) Engine() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authSvc == nil {
		return errors.New("auth service is required")
	}
	if srv.matrixUC == nil {
		return errors.New("matrix use case is required")
	}
	if srv.wizardUC == nil {
		return errors.New("wizard use case is required")
	}
	if srv.contactsUC == nil {
		return errors.New("contacts use case is required")
	}
	if srv.pomodoroTimer == nil {
		return errors.New("pomodoro timer is required")
	}
	return nil
}
