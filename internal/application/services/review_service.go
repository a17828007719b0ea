package services

import (
	"context"
	"strings"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/providers"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/observability"
	"github.com/aashray-care/aashray-backend/pkg/errors"
)

// CreateReviewRequest carries the caller-supplied fields for a new review.
type CreateReviewRequest struct {
	BookingID  int64  `json:"booking_id"`
	ProviderID int64  `json:"provider_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ReviewService creates reviews and keeps provider ratings in sync through
// the rating service.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	rating     *RatingService
	eventBus   providers.EventBus
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	rating *RatingService,
	eventBus providers.EventBus,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		rating:     rating,
		eventBus:   eventBus,
	}
}

// CreateReview persists a review and recomputes the provider's aggregate
// rating. The review is the source of truth: if the recompute fails the
// review still stands and the failure is logged for operator attention.
func (s *ReviewService) CreateReview(ctx context.Context, userID string, req *CreateReviewRequest) (*entities.Review, error) {
	if err := validateCreateReview(req); err != nil {
		return nil, err
	}

	review := &entities.Review{
		BookingID:  req.BookingID,
		UserID:     userID,
		ProviderID: req.ProviderID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.rating.OnReviewCreated(ctx, created.ProviderID); err != nil {
		observability.GetLogger().Error().
			Err(err).
			Int64("provider_id", created.ProviderID).
			Int64("review_id", created.ID).
			Msg("Provider rating recompute failed after review creation")
	}

	if s.eventBus != nil {
		event := entities.NewBookingEvent(entities.BookingEventTypeReviewCreated, created.BookingID, created.ProviderID, created.UserID)
		if err := s.eventBus.Publish(ctx, providers.EventChannelBookings, event); err != nil {
			observability.GetLogger().Warn().
				Err(err).
				Int64("review_id", created.ID).
				Msg("Failed to publish review event")
		}
	}

	return created, nil
}

// ListProviderReviews returns a provider's reviews newest first, each with
// the reviewer attached.
func (s *ReviewService) ListProviderReviews(ctx context.Context, providerID int64) ([]*entities.ReviewWithUser, error) {
	if providerID <= 0 {
		return nil, errors.NewValidationError("provider id must be a positive integer")
	}
	return s.reviewRepo.ListByProvider(ctx, providerID)
}

func validateCreateReview(req *CreateReviewRequest) error {
	var fields []errors.FieldError

	if req.BookingID <= 0 {
		fields = append(fields, errors.FieldError{Field: "booking_id", Message: "booking_id is required"})
	}
	if req.ProviderID <= 0 {
		fields = append(fields, errors.FieldError{Field: "provider_id", Message: "provider_id is required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		fields = append(fields, errors.FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	if len(fields) > 0 {
		return errors.NewFieldValidationError("review request failed validation", fields)
	}
	return nil
}
