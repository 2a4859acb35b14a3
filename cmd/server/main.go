package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/techblog-api/internal/api"
	"github.com/techblog-api/internal/config"
	"github.com/techblog-api/internal/repository"
	"github.com/techblog-api/internal/seed"
	"github.com/techblog-api/internal/service"
	"github.com/techblog-api/internal/session"
	"github.com/techblog-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New(logger.FromEnv())
	log.Info().Msg("Starting TechBlog API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Load the seed catalogue
	data, err := seed.LoadDir(cfg.Seed.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Seed.Dir).Msg("Failed to load seed data")
	}

	// Initialize repositories
	repos := repository.New()
	if err := seed.Apply(context.Background(), repos, data); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed repositories")
	}
	log.Info().
		Int("articles", len(data.Articles)).
		Int("users", len(data.Users)).
		Msg("Catalogue loaded")

	// Initialize session store
	var sessions session.Store = session.NewMemoryStore()
	if cfg.Session.File != "" {
		fileStore := session.NewFileStore(cfg.Session.File, log)
		if u := fileStore.Current(); u != nil {
			log.Info().Str("username", u.Username).Msg("Signed-in user restored")
		}
		sessions = fileStore
	}

	// Initialize services
	services := service.NewServices(repos, sessions, cfg, log)

	// Initialize router
	router := api.NewRouter(services, sessions, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", cfg.Server.Port).
			Str("render_engine", cfg.Render.Engine).
			Str("render_escape", cfg.Render.Escape).
			Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
