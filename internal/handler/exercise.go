package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/model"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/service"
)

// Date layouts on the wire. The create and logs endpoints render the
// original's human-readable toDateString form ("Mon Jan 02 2006"); the
// exercises listing uses the ISO calendar date.
const (
	humanDateLayout = "Mon Jan 02 2006"
	isoDateLayout   = "2006-01-02"
)

// ExerciseHandler exposes the three exercise-log endpoints, all nested
// under a user: create a log, list all logs, list filtered logs.
type ExerciseHandler struct {
	svc    *service.ExerciseService
	logger *slog.Logger
}

func NewExerciseHandler(svc *service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{svc: svc, logger: logger}
}

// createExerciseRequest uses json.Number for duration so both 30 and "30"
// decode — the original accepted form-encoded strings, and clients ported
// from it still send quoted numbers. Anything non-numeric fails the
// Int64() conversion and is rejected as a validation error.
type createExerciseRequest struct {
	Description string      `json:"description"`
	Duration    json.Number `json:"duration"`
	Date        string      `json:"date"`
}

type exerciseCreatedResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

type exerciseEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type exerciseListResponse struct {
	Username  string          `json:"username"`
	ID        string          `json:"_id"`
	Exercises []exerciseEntry `json:"exercises"`
}

type logsResponse struct {
	Username string          `json:"username"`
	Count    int             `json:"count"`
	ID       string          `json:"_id"`
	Log      []exerciseEntry `json:"log"`
}

// HandleCreate records an exercise for a user.
//
// HTTP: POST /api/users/{id}/exercises
// REQUEST BODY: {"description": "run", "duration": 30, "date": "2026-08-29"}
// (date optional — defaults to now)
//
// RESPONSE: 201 with the log echoed back plus the owning username and a
// human-readable date.
func (h *ExerciseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req createExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid exercise JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	duration := 0
	if req.Duration != "" {
		n, err := req.Duration.Int64()
		if err != nil {
			writeError(w, apperror.ValidationFailed("duration", "duration must be a positive integer"))
			return
		}
		duration = int(n)
	}

	user, log, err := h.svc.AddLog(r.Context(), userID, req.Description, duration, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, exerciseCreatedResponse{
		Username:    user.Username,
		Description: log.Description,
		Duration:    log.Duration,
		Date:        log.Date.Format(humanDateLayout),
		ID:          log.ID,
	})
}

// HandleList returns all of a user's exercises, newest first.
//
// HTTP: GET /api/users/{id}/exercises
func (h *ExerciseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, logs, err := h.svc.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exerciseListResponse{
		Username:  user.Username,
		ID:        user.ID,
		Exercises: projectEntries(logs, isoDateLayout),
	})
}

// HandleLogs returns a user's logs narrowed by optional from/to/limit
// query parameters, plus the pre-filter total.
//
// HTTP: GET /api/users/{id}/logs?from=2026-01-01&to=2026-06-30&limit=3
//
// A user with zero logs gets 404 "logs not found"; a malformed from/to
// gets 400; an unusable limit silently falls back to the default.
func (h *ExerciseHandler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	params := r.URL.Query()

	user, total, logs, err := h.svc.FilteredLog(r.Context(), userID,
		params.Get("from"), params.Get("to"), params.Get("limit"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logsResponse{
		Username: user.Username,
		Count:    total,
		ID:       user.ID,
		Log:      projectEntries(logs, humanDateLayout),
	})
}

// projectEntries maps internal log records to their public wire shape.
func projectEntries(logs []model.ExerciseLog, layout string) []exerciseEntry {
	entries := make([]exerciseEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, exerciseEntry{
			Description: l.Description,
			Duration:    l.Duration,
			Date:        l.Date.Format(layout),
		})
	}
	return entries
}
