package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eisenhower-matrix/config"
	_ "eisenhower-matrix/docs" // Swagger docs
	"eisenhower-matrix/internal/auth/gotrue"
	"eisenhower-matrix/internal/contacts"
	contactsMemory "eisenhower-matrix/internal/contacts/repository/memory"
	contactsUC "eisenhower-matrix/internal/contacts/usecase"
	"eisenhower-matrix/internal/httpserver"
	"eisenhower-matrix/internal/matrix/repository/localstore"
	"eisenhower-matrix/internal/matrix/repository/supabase"
	matrixUC "eisenhower-matrix/internal/matrix/usecase"
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/internal/pomodoro"
	wizardUC "eisenhower-matrix/internal/wizard/usecase"
	"eisenhower-matrix/pkg/log"
)

// @title       Eisenhower Matrix API
// @description Personal task prioritization with quadrant classification, a recommendation wizard and offline-tolerant persistence.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Eisenhower Matrix API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Persistence and identity collaborators
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout)
	taskRepo := supabase.NewTaskRepository(supabaseClient, logger)
	linkRepo := supabase.NewLinkRepository(supabaseClient, logger)

	snapshots, err := localstore.New(cfg.LocalStore.Dir, cfg.LocalStore.CacheSize, cfg.LocalStore.CacheTTL)
	if err != nil {
		logger.Errorf(ctx, "Failed to open local snapshot store: %v", err)
		return
	}

	authSvc := gotrue.New(logger, cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.Timeout)

	// 4. Domain use cases
	matrixUseCase, err := matrixUC.New(logger, taskRepo, linkRepo, snapshots, cfg.Rules, cfg.Projects)
	if err != nil {
		logger.Errorf(ctx, "Failed to build matrix use case: %v", err)
		return
	}

	wizardUseCase, err := wizardUC.New(logger, matrixUseCase, "")
	if err != nil {
		logger.Errorf(ctx, "Failed to build wizard use case: %v", err)
		return
	}

	contactRepo := contactsMemory.New(contacts.DefaultSeed())
	contactsUseCase := contactsUC.New(logger, contactRepo)

	// 5. Pomodoro timer, driven by a local clock
	timer := pomodoro.New(cfg.Pomodoro)
	go driveTimer(ctx, timer)
	go logTimerEvents(ctx, logger, timer)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   model.Environment(cfg.Environment.Name),
		AuthService:   authSvc,
		MatrixUC:      matrixUseCase,
		WizardUC:      wizardUseCase,
		ContactsUC:    contactsUseCase,
		PomodoroTimer: timer,
		RateLimit:     cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// driveTimer advances the pomodoro timer once a second until shutdown.
func driveTimer(ctx context.Context, timer *pomodoro.Timer) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			timer.Tick(time.Second)
		}
	}
}

// logTimerEvents consumes completed sessions for visibility.
func logTimerEvents(ctx context.Context, logger log.Logger, timer *pomodoro.Timer) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-timer.Events():
			if e.Kind == pomodoro.EventSessionComplete {
				logger.Infof(ctx, "Pomodoro %s phase complete (%d work sessions)", e.Phase, e.Sessions)
			}
		}
	}
}
