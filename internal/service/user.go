// Package service contains the business logic layer of the application.
//
// The layering follows the usual three-tier shape:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → validates, enforces rules, orchestrates
//	Repository (data layer)  → reads/writes the database
//
// Services accept primitives and return domain errors from the apperror
// package — they know nothing about HTTP. Handlers translate those errors
// to status codes. Repositories are injected as interfaces so tests can
// swap in in-memory mocks.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/metrics"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/model"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/repository"
)

const MaxUsernameLength = 64

// UserService handles registration and listing of users.
type UserService struct {
	users    repository.UserRepository
	maxUsers int
	logger   *slog.Logger
}

// NewUserService creates a UserService. maxUsers is the total-user ceiling
// from config; inserts beyond it are rejected with QuotaExceeded.
func NewUserService(users repository.UserRepository, maxUsers int, logger *slog.Logger) *UserService {
	return &UserService{
		users:    users,
		maxUsers: maxUsers,
		logger:   logger,
	}
}

// Register creates a new user.
//
// Guard order: quota, then shape, then uniqueness — cheapest check that
// needs no input first, store lookups last. Each guard short-circuits with
// a domain error; nothing here touches HTTP.
//
// The quota and uniqueness checks are check-then-act and can race under
// concurrent registrations. Accepted for this traffic profile: the quota
// is anti-abuse (off-by-one under a race is harmless) and the username
// UNIQUE index converts a lost race into the same Conflict error.
func (s *UserService) Register(ctx context.Context, username string) (*model.User, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	if count >= s.maxUsers {
		metrics.QuotaRejections.WithLabelValues("users").Inc()
		return nil, apperror.QuotaExceeded("user", s.maxUsers)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}
	if len(username) > MaxUsernameLength {
		return nil, apperror.ValidationFailed("username",
			fmt.Sprintf("username must be %d characters or less", MaxUsernameLength))
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperror.Conflict("username", username)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("checking username %q: %w", username, err)
	}

	user := &model.User{Username: username}
	if err := s.users.Create(ctx, user); err != nil {
		// The UNIQUE index can still fire if a concurrent registration won
		// the race; that comes back as Conflict and propagates as-is.
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		s.logger.Error("failed to create user",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	metrics.UsersCreated.Inc()
	s.logger.Info("user registered",
		slog.String("id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// List returns all registered users. An empty slice is a valid result —
// the original treated it as an error through a comparison that could
// never fire, and empty-is-fine is the intended behaviour.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
