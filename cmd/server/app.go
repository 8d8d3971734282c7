package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskdeck-api/internal/config"
	"github.com/phrazzld/taskdeck-api/internal/platform/memstore"
	"github.com/phrazzld/taskdeck-api/internal/service/auth"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure consistent wiring.
type application struct {
	config *config.Config
	logger *slog.Logger

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the application's dependencies from configuration.
// All state lives in process memory; the stores start empty on every boot.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		userStore:        memstore.NewUserStore(),
		taskStore:        memstore.NewTaskStore(),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}
