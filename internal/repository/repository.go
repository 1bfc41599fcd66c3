package repository

import (
	"context"
	"time"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/model"
)

// LogQuery is a filter/order/limit specification for listing exercise logs.
// Nil bounds mean "no bound on that side". Ordering is always date
// descending, so it is not part of the spec. Limit <= 0 means no limit.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int, error)
	// Delete removes a user and, via the store's cascade, all of their
	// exercise logs. There is no HTTP surface for this; it exists for
	// operational cleanup.
	Delete(ctx context.Context, id string) error
}

type ExerciseRepository interface {
	CreateLog(ctx context.Context, log *model.ExerciseLog) error
	ListByUser(ctx context.Context, userID string, q LogQuery) ([]model.ExerciseLog, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
