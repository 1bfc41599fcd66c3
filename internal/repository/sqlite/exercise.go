package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/model"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/repository"
)

// compile-time check that *DB implements repository.ExerciseRepository
var _ repository.ExerciseRepository = (*DB)(nil)

// CreateLog inserts a new exercise log, generating its ID and defaulting
// the date to "now" when the caller left it zero. The log pointer is
// modified in place. Named CreateLog because the shared *DB already has
// Create for users.
//
// The foreign key on user_id enforces the referential invariant at the
// store level: inserting a log for a user that doesn't exist fails, which
// we surface as NotFound in case a user was deleted between the service's
// lookup and the insert.
func (db *DB) CreateLog(ctx context.Context, log *model.ExerciseLog) error {
	log.ID = xid.New().String()
	log.CreatedAt = time.Now().UTC()
	if log.Date.IsZero() {
		log.Date = log.CreatedAt
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO exercise_logs (id, user_id, description, duration, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		log.ID,
		log.UserID,
		log.Description,
		log.Duration,
		log.Date,
		log.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return apperror.NotFound("user", log.UserID)
		}
		return fmt.Errorf("sqlite: inserting exercise log for user %s: %w", log.UserID, err)
	}

	return nil
}

// ListByUser returns a user's exercise logs, date descending, applying the
// optional bounds and limit from q.
//
// The WHERE clause is assembled from fixed fragments — only placeholder
// values vary, so there is no injection surface. Both bounds are
// inclusive, matching the original behaviour (date >= from AND date <= to).
func (db *DB) ListByUser(ctx context.Context, userID string, q repository.LogQuery) ([]model.ExerciseLog, error) {
	var sb strings.Builder
	sb.WriteString(
		`SELECT id, user_id, description, duration, date, created_at
		 FROM exercise_logs
		 WHERE user_id = ?`)
	args := []any{userID}

	if q.From != nil {
		sb.WriteString(` AND date >= ?`)
		args = append(args, *q.From)
	}
	if q.To != nil {
		sb.WriteString(` AND date <= ?`)
		args = append(args, *q.To)
	}

	sb.WriteString(` ORDER BY date DESC`)

	if q.Limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, q.Limit)
	}

	rows, err := db.conn.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing exercise logs for user %s: %w", userID, err)
	}
	defer rows.Close()

	logs := []model.ExerciseLog{}
	for rows.Next() {
		var l model.ExerciseLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Description, &l.Duration,
			&l.Date, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning exercise log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating exercise logs: %w", err)
	}

	return logs, nil
}

// CountByUser returns how many logs a user has, unfiltered. Used both for
// the per-user quota check and for the pre-filter "count" field on the
// logs endpoint.
func (db *DB) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM exercise_logs WHERE user_id = ?`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("sqlite: counting exercise logs for user %s: %w", userID, err)
	}
	return n, nil
}
