// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the composition root: main.go hands it config and a logger, and
// New wires the whole dependency chain in one place —
//
//	sqlite.DB → services → handlers → routes
//
// Each layer only receives what it needs: services get repository
// interfaces, handlers get services, nothing below the handler layer
// touches HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/config"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/handler"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/metrics"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/middleware"
	sqliteRepo "github.com/dapod93/freecodecamp-exercisetracker-service/internal/repository/sqlite"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/service"
)

// Server owns the router and the database handle. The DB is closed during
// graceful shutdown so the WAL is flushed and the file lock released.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server with all dependencies wired.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// Route structure:
//
//	GET  /                          → service banner (or index.html)
//	GET  /public/*                  → static files (when STATIC_DIR is set)
//	GET  /healthz                   → liveness probe
//	GET  /metrics                   → Prometheus exposition
//	POST /api/users                 → register a user
//	GET  /api/users                 → list users
//	POST /api/users/{id}/exercises  → record an exercise
//	GET  /api/users/{id}/exercises  → list a user's exercises
//	GET  /api/users/{id}/logs       → filtered/limited log query
//
// Middleware order matters: request ID and real IP first so the logger
// sees them, recoverer before anything that can panic, then logging and
// metrics around the actual handlers.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.HTTPMetrics)

	// The original service runs the cors middleware globally; same here,
	// with the origins configurable instead of hard-wired to "*".
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("/metrics", metrics.Handler())

	// Root page: the original served a small HTML page from its public
	// directory. When a static dir is configured we do the same; without
	// one the root answers with a JSON banner so it is never a 404.
	if s.config.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(s.config.StaticDir))
		s.router.Handle("/public/*", http.StripPrefix("/public/", fileServer))
		s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(s.config.StaticDir, "index.html"))
		})
	} else {
		s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"exercise tracker api"}`))
		})
	}

	userService := service.NewUserService(s.db, s.config.MaxUsers, s.logger)
	exerciseService := service.NewExerciseService(s.db, s.db, s.config.MaxLogsPerUser, s.logger)

	userHandler := handler.NewUserHandler(userService, s.logger)
	exerciseHandler := handler.NewExerciseHandler(exerciseService, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.HandleCreate)
		r.Get("/users", userHandler.HandleList)
		r.Post("/users/{id}/exercises", exerciseHandler.HandleCreate)
		r.Get("/users/{id}/exercises", exerciseHandler.HandleList)
		r.Get("/users/{id}/logs", exerciseHandler.HandleLogs)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
