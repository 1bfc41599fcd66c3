package service

// Hand-written in-memory mocks for the repository interfaces. The service
// never knows which implementation it gets — same interface the SQLite
// store implements, so tests exercise the business rules with plain
// function calls and no database.

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/model"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/repository"
)

type mockUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return apperror.Conflict("username", user.Username)
		}
	}
	m.nextID++
	user.ID = fmt.Sprintf("mock-user-%d", m.nextID)
	user.CreatedAt = time.Now()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	result := *u
	return &result, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user", username)
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int, error) {
	return len(m.users), nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return apperror.NotFound("user", id)
	}
	delete(m.users, id)
	return nil
}

type mockExerciseRepo struct {
	logs   []model.ExerciseLog
	nextID int
}

func newMockExerciseRepo() *mockExerciseRepo {
	return &mockExerciseRepo{}
}

func (m *mockExerciseRepo) CreateLog(_ context.Context, log *model.ExerciseLog) error {
	m.nextID++
	log.ID = fmt.Sprintf("mock-log-%d", m.nextID)
	log.CreatedAt = time.Now()
	if log.Date.IsZero() {
		log.Date = log.CreatedAt
	}
	m.logs = append(m.logs, *log)
	return nil
}

// ListByUser mirrors the store's semantics: optional inclusive bounds,
// date descending, optional limit.
func (m *mockExerciseRepo) ListByUser(_ context.Context, userID string, q repository.LogQuery) ([]model.ExerciseLog, error) {
	result := []model.ExerciseLog{}
	for _, l := range m.logs {
		if l.UserID != userID {
			continue
		}
		if q.From != nil && l.Date.Before(*q.From) {
			continue
		}
		if q.To != nil && l.Date.After(*q.To) {
			continue
		}
		result = append(result, l)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })

	if q.Limit > 0 && q.Limit < len(result) {
		result = result[:q.Limit]
	}
	return result, nil
}

func (m *mockExerciseRepo) CountByUser(_ context.Context, userID string) (int, error) {
	n := 0
	for _, l := range m.logs {
		if l.UserID == userID {
			n++
		}
	}
	return n, nil
}
