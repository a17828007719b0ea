package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aashray-care/aashray-backend/internal/api/middleware"
	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// UserProfileOperations defines the profile operations used by the handler
type UserProfileOperations interface {
	GetUser(ctx context.Context, userID string) (*entities.User, error)
	UpsertProfile(ctx context.Context, userID string, req *services.UpdateProfileRequest) (*entities.User, error)
}

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	service UserProfileOperations
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserProfileOperations) *UserHandler {
	return &UserHandler{service: service}
}

// GetCurrentUser handles GET /api/auth/user
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// UpdateCurrentUser handles PUT /api/auth/user
func (h *UserHandler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req services.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.service.UpsertProfile(r.Context(), userID, &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}
