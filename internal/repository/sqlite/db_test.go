package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/model"
)

// newTestDB opens a throwaway database under t.TempDir(). A file-backed DB
// rather than ":memory:" because each pooled connection gets its own
// in-memory database, which makes pool-crossing tests lie.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// createTestUser creates a user and fails the test if it errors.
func createTestUser(t *testing.T, db *DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username}
	if err := db.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user %q: %v", username, err)
	}
	return user
}

// createTestLog records an exercise on the given date and fails the test
// if it errors.
func createTestLog(t *testing.T, db *DB, userID, description string, date time.Time) *model.ExerciseLog {
	t.Helper()
	log := &model.ExerciseLog{
		UserID:      userID,
		Description: description,
		Duration:    30,
		Date:        date,
	}
	if err := db.CreateLog(context.Background(), log); err != nil {
		t.Fatalf("failed to create test log %q: %v", description, err)
	}
	return log
}
