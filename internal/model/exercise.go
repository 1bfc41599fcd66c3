package model

import "time"

// ExerciseLog is a single exercise entry belonging to a user.
//
// Date is when the exercise happened, not when the row was written — the
// client may submit it, and the repository defaults it to the insert time
// when it's zero. Duration is a unit-less count (minutes by convention).
//
// Logs are append-only: never updated, and deleted only by the cascade
// when their owning user is removed.
type ExerciseLog struct {
	ID          string    `json:"id"          db:"id"`
	UserID      string    `json:"userId"      db:"user_id"`
	Description string    `json:"description" db:"description"`
	Duration    int       `json:"duration"    db:"duration"`
	Date        time.Time `json:"date"        db:"date"`
	CreatedAt   time.Time `json:"createdAt"   db:"created_at"`
}
