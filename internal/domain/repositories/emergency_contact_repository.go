package repositories

import (
	"context"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// EmergencyContactRepository defines the interface for emergency contact
// data operations
type EmergencyContactRepository interface {
	// Create persists a new emergency contact
	Create(ctx context.Context, contact *entities.EmergencyContact) (*entities.EmergencyContact, error)

	// ListByUser retrieves a user's emergency contacts, primary contacts first
	ListByUser(ctx context.Context, userID string) ([]*entities.EmergencyContact, error)
}
