package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aashray-care/aashray-backend/internal/api/middleware"
	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// ReviewOperations defines the review operations used by the handler
type ReviewOperations interface {
	CreateReview(ctx context.Context, userID string, req *services.CreateReviewRequest) (*entities.Review, error)
	ListProviderReviews(ctx context.Context, providerID int64) ([]*entities.ReviewWithUser, error)
}

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	service ReviewOperations
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service ReviewOperations) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req services.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID, &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

// ListProviderReviews handles GET /api/service-providers/{id}/reviews
func (h *ReviewHandler) ListProviderReviews(w http.ResponseWriter, r *http.Request) {
	providerID, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	reviews, err := h.service.ListProviderReviews(r.Context(), providerID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}
