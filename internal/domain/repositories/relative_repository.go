package repositories

import (
	"context"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// RelativeRepository defines the interface for relative-link data operations
type RelativeRepository interface {
	// Create persists a new relative edge and returns it with its assigned ID
	Create(ctx context.Context, relative *entities.Relative) (*entities.Relative, error)

	// ListBySeniorCitizen retrieves a senior citizen's relative edges joined
	// with the relatives' user records
	ListBySeniorCitizen(ctx context.Context, seniorCitizenID string) ([]*entities.RelativeWithUser, error)

	// GetEdge looks up the directed edge seniorCitizenID -> relativeID.
	// A missing edge returns (nil, nil), not an error.
	GetEdge(ctx context.Context, seniorCitizenID, relativeID string) (*entities.Relative, error)
}
