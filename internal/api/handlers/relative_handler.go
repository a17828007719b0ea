package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aashray-care/aashray-backend/internal/api/middleware"
	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// RelativeOperations defines the relative-link operations used by the handler
type RelativeOperations interface {
	LinkRelative(ctx context.Context, seniorCitizenID string, req *services.LinkRelativeRequest) (*entities.Relative, error)
	ListRelatives(ctx context.Context, seniorCitizenID string) ([]*entities.RelativeWithUser, error)
}

// RelativeHandler handles relative-link HTTP requests
type RelativeHandler struct {
	service RelativeOperations
}

// NewRelativeHandler creates a new relative handler
func NewRelativeHandler(service RelativeOperations) *RelativeHandler {
	return &RelativeHandler{service: service}
}

// LinkRelative handles POST /api/relatives
func (h *RelativeHandler) LinkRelative(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req services.LinkRelativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	relative, err := h.service.LinkRelative(r.Context(), userID, &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, relative)
}

// ListRelatives handles GET /api/relatives
func (h *RelativeHandler) ListRelatives(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	relatives, err := h.service.ListRelatives(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"relatives": relatives,
		"count":     len(relatives),
	})
}
