package repositories

import (
	"context"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// ProviderRepository defines the interface for service provider data operations
type ProviderRepository interface {
	// Create creates a new service provider
	Create(ctx context.Context, provider *entities.ServiceProvider) (*entities.ServiceProvider, error)

	// GetByID retrieves a service provider by ID
	GetByID(ctx context.Context, id int64) (*entities.ServiceProvider, error)

	// List retrieves active providers matching the filter, best-rated first
	List(ctx context.Context, filter ProviderFilter) ([]*entities.ServiceProvider, error)

	// UpdateRating writes the derived rating fields. Only the rating
	// aggregation path may call this.
	UpdateRating(ctx context.Context, id int64, rating float64, totalReviews int) error
}

// ProviderFilter defines filters for listing providers
type ProviderFilter struct {
	ServiceType entities.ServiceType
	Location    string
}
