package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/metrics"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/model"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/query"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/repository"
)

const MaxDescriptionLength = 500

// ExerciseService handles creating and querying exercise logs. It needs
// both repositories: every operation starts by resolving the owning user.
type ExerciseService struct {
	users          repository.UserRepository
	logs           repository.ExerciseRepository
	maxLogsPerUser int
	logger         *slog.Logger
}

// NewExerciseService creates an ExerciseService. maxLogsPerUser is the
// per-user log ceiling from config.
func NewExerciseService(
	users repository.UserRepository,
	logs repository.ExerciseRepository,
	maxLogsPerUser int,
	logger *slog.Logger,
) *ExerciseService {
	return &ExerciseService{
		users:          users,
		logs:           logs,
		maxLogsPerUser: maxLogsPerUser,
		logger:         logger,
	}
}

// AddLog records an exercise against a user.
//
// Guard sequence: resolve the user (NotFound short-circuits), enforce the
// per-user quota, validate the fields, then insert. date is the raw string
// from the client — empty means "now" (the repository fills it in), and a
// present-but-malformed value is a validation error rather than silently
// becoming the insert time.
func (s *ExerciseService) AddLog(ctx context.Context, userID, description string, duration int, date string) (*model.User, *model.ExerciseLog, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	count, err := s.logs.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("counting exercise logs: %w", err)
	}
	if count >= s.maxLogsPerUser {
		metrics.QuotaRejections.WithLabelValues("exercise_logs").Inc()
		return nil, nil, apperror.QuotaExceeded("exercise log", s.maxLogsPerUser)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil, apperror.ValidationFailed("description", "description is required")
	}
	if len(description) > MaxDescriptionLength {
		return nil, nil, apperror.ValidationFailed("description",
			fmt.Sprintf("description must be %d characters or less", MaxDescriptionLength))
	}
	if duration <= 0 {
		return nil, nil, apperror.ValidationFailed("duration", "duration must be a positive integer")
	}

	log := &model.ExerciseLog{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
	}
	if date != "" {
		t, err := time.Parse(query.DateLayout, date)
		if err != nil {
			return nil, nil, apperror.ValidationFailed("date",
				fmt.Sprintf("date must be in %s format", query.DateLayout))
		}
		log.Date = t
	}

	if err := s.logs.CreateLog(ctx, log); err != nil {
		s.logger.Error("failed to create exercise log",
			slog.String("userId", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("creating exercise log: %w", err)
	}

	metrics.ExerciseLogsCreated.Inc()
	s.logger.Info("exercise log created",
		slog.String("id", log.ID),
		slog.String("userId", user.ID),
		slog.Int("duration", log.Duration),
	)

	return user, log, nil
}

// ListForUser returns all of a user's exercise logs, date descending.
// Zero logs is a valid empty result here; only the filtered endpoint
// treats it as NotFound.
func (s *ExerciseService) ListForUser(ctx context.Context, userID string) (*model.User, []model.ExerciseLog, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	logs, err := s.logs.ListByUser(ctx, user.ID, repository.LogQuery{})
	if err != nil {
		s.logger.Error("failed to list exercise logs",
			slog.String("userId", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("listing exercise logs: %w", err)
	}

	return user, logs, nil
}

// FilteredLog returns a user's logs narrowed by the optional from/to/limit
// parameters, along with the user's pre-filter total.
//
// Guard sequence per the original endpoint: resolve the user, then fail
// with "logs not found" when they have no logs at all, then apply the
// filter. The returned count is the unfiltered total, not the filtered
// result size.
func (s *ExerciseService) FilteredLog(ctx context.Context, userID, from, to, limit string) (*model.User, int, []model.ExerciseLog, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, nil, err
	}

	total, err := s.logs.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("counting exercise logs: %w", err)
	}
	if total == 0 {
		return nil, 0, nil, apperror.NotFoundMessage("logs not found")
	}

	q, err := query.BuildLogQuery(from, to, limit)
	if err != nil {
		return nil, 0, nil, err
	}

	logs, err := s.logs.ListByUser(ctx, user.ID, q)
	if err != nil {
		s.logger.Error("failed to query exercise logs",
			slog.String("userId", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, 0, nil, fmt.Errorf("querying exercise logs: %w", err)
	}

	return user, total, logs, nil
}
