package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aashray-care/aashray-backend/internal/api/middleware"
	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// BookingOperations defines the booking operations used by the handler
type BookingOperations interface {
	CreateBooking(ctx context.Context, userID string, req *services.CreateBookingRequest) (*entities.BookingWithProvider, error)
	GetBooking(ctx context.Context, userID string, bookingID int64) (*entities.BookingWithProvider, error)
	ListUserBookings(ctx context.Context, userID string) ([]*entities.BookingWithProvider, error)
	CancelBooking(ctx context.Context, userID string, bookingID int64) (*entities.BookingWithProvider, error)
}

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	service BookingOperations
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service BookingOperations) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req services.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, booking)
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookings, err := h.service.ListUserBookings(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookingID, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, booking)
}

// CancelBooking handles POST /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookingID, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, booking)
}
