package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aashray-care/aashray-backend/internal/api/middleware"
	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// EmergencyContactOperations defines the contact operations used by the handler
type EmergencyContactOperations interface {
	AddContact(ctx context.Context, userID string, req *services.AddEmergencyContactRequest) (*entities.EmergencyContact, error)
	ListContacts(ctx context.Context, userID string) ([]*entities.EmergencyContact, error)
}

// SOSBroadcaster triggers the emergency fan-out
type SOSBroadcaster interface {
	BroadcastSOS(ctx context.Context, user *entities.User) (*entities.SOSResult, error)
}

// UserReader loads the caller's profile for the SOS message
type UserReader interface {
	GetUser(ctx context.Context, userID string) (*entities.User, error)
}

// EmergencyHandler handles emergency contact and SOS HTTP requests
type EmergencyHandler struct {
	contacts    EmergencyContactOperations
	broadcaster SOSBroadcaster
	users       UserReader
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(contacts EmergencyContactOperations, broadcaster SOSBroadcaster, users UserReader) *EmergencyHandler {
	return &EmergencyHandler{
		contacts:    contacts,
		broadcaster: broadcaster,
		users:       users,
	}
}

// AddContact handles POST /api/emergency-contacts
func (h *EmergencyHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req services.AddEmergencyContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	contact, err := h.contacts.AddContact(r.Context(), userID, &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, contact)
}

// ListContacts handles GET /api/emergency-contacts
func (h *EmergencyHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	contacts, err := h.contacts.ListContacts(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"contacts": contacts,
		"count":    len(contacts),
	})
}

// TriggerSOS handles POST /api/emergency/sos
func (h *EmergencyHandler) TriggerSOS(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.broadcaster.BroadcastSOS(r.Context(), user)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":          "SOS alerts sent",
		"contactsNotified": result.ContactsNotified,
		"totalContacts":    result.TotalContacts,
	})
}
