package repositories

import (
	"context"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	// Create persists a new review and returns it with its assigned ID
	Create(ctx context.Context, review *entities.Review) (*entities.Review, error)

	// ListByProvider retrieves a provider's reviews joined with their
	// reviewers, newest first
	ListByProvider(ctx context.Context, providerID int64) ([]*entities.ReviewWithUser, error)

	// AggregateByProvider computes the mean rating and review count over
	// all reviews for a provider. A provider with no reviews yields (0, 0).
	AggregateByProvider(ctx context.Context, providerID int64) (avgRating float64, totalReviews int, err error)
}
