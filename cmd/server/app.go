package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// application holds the process-wide dependencies: configuration, logging,
// the database handle, and the stores and services built on top of them.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	postStore     store.PostStore
	userStore     store.UserStore
	categoryStore store.CategoryStore

	// Service interfaces
	tokenService     auth.TokenService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the application's dependency graph.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	hasher := auth.NewBcryptHasher(0)

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		postStore:        postgres.NewPostgresPostStore(db, logger),
		userStore:        postgres.NewPostgresUserStore(db, logger),
		categoryStore:    postgres.NewPostgresCategoryStore(db, logger),
		tokenService:     tokenService,
		passwordHasher:   hasher,
		passwordVerifier: hasher,
	}, nil
}
