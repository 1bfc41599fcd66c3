// Package main is the entry point for the exercise tracker server.
//
// main stays minimal: load config, build the logger, register metrics,
// make sure the database directory exists, start the server. Everything
// else lives in internal packages so it can be constructed in tests.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/config"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/logger"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/metrics"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/server"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	metrics.Init()

	// SQLite wants its parent directory to exist before it creates the
	// file. ":memory:" and other non-path DSNs have no directory to make.
	if dir := filepath.Dir(cfg.DBPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error("failed to create database directory",
				slog.String("dir", dir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until the server is shut down (Ctrl+C or SIGTERM).
	if err := srv.Start(); err != nil {
		log.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
