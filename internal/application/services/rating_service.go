package services

import (
	"context"
	"math"
	"sync"

	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/observability"
)

// RatingService keeps the denormalized rating and review count on a service
// provider consistent with the full review history. Recomputes for the same
// provider are serialized so concurrent reviews cannot interleave their
// read-aggregate-write cycles.
type RatingService struct {
	reviewRepo   repositories.ReviewRepository
	providerRepo repositories.ProviderRepository

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewRatingService(
	reviewRepo repositories.ReviewRepository,
	providerRepo repositories.ProviderRepository,
) *RatingService {
	return &RatingService{
		reviewRepo:   reviewRepo,
		providerRepo: providerRepo,
		locks:        make(map[int64]*sync.Mutex),
	}
}

// OnReviewCreated recomputes the provider's average rating from all stored
// reviews and writes it back rounded to one decimal place, together with the
// total review count.
func (s *RatingService) OnReviewCreated(ctx context.Context, providerID int64) error {
	lock := s.lockFor(providerID)
	lock.Lock()
	defer lock.Unlock()

	avg, total, err := s.reviewRepo.AggregateByProvider(ctx, providerID)
	if err != nil {
		return err
	}

	rating := math.Round(avg*10) / 10
	if err := s.providerRepo.UpdateRating(ctx, providerID, rating, total); err != nil {
		return err
	}

	observability.GetLogger().Debug().
		Int64("provider_id", providerID).
		Float64("rating", rating).
		Int("total_reviews", total).
		Msg("Provider rating recomputed")
	return nil
}

func (s *RatingService) lockFor(providerID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[providerID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[providerID] = lock
	}
	return lock
}
