package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/service"
)

// UserHandler exposes user registration and listing.
//
// The wire shapes keep the original API's field names — clients bind to
// "_id", so the JSON tags preserve it even though the internal model calls
// it ID.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

type createUserRequest struct {
	Username string `json:"username"`
}

type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// HandleCreate registers a new user.
//
// HTTP: POST /api/users
// REQUEST BODY: {"username": "alice"}
// RESPONSE: 201 {"username": "alice", "_id": "cv37rs3pp9olc6atsptg"}
//
// Failure modes: 400 empty/overlong username, 409 duplicate username,
// 403 user quota exhausted.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid user JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	user, err := h.svc.Register(r.Context(), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		Username: user.Username,
		ID:       user.ID,
	})
}

// HandleList returns all registered users as a JSON array. An empty array
// is a valid response, not an error.
//
// HTTP: GET /api/users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{Username: u.Username, ID: u.ID})
	}

	writeJSON(w, http.StatusOK, out)
}
