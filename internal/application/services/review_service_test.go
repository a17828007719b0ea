package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	apperrors "github.com/aashray-care/aashray-backend/pkg/errors"
)

func newReviewServiceFixture() (*MockReviewRepository, *MockProviderRepository, *services.ReviewService) {
	reviewRepo := new(MockReviewRepository)
	providerRepo := new(MockProviderRepository)
	rating := services.NewRatingService(reviewRepo, providerRepo)
	service := services.NewReviewService(reviewRepo, rating, nil)
	return reviewRepo, providerRepo, service
}

func TestReviewService_CreateReview(t *testing.T) {
	validRequest := &services.CreateReviewRequest{
		BookingID:  42,
		ProviderID: 7,
		Rating:     4,
		Comment:    "Very patient and punctual",
	}

	t.Run("creates the review and recomputes the provider rating", func(t *testing.T) {
		reviewRepo, providerRepo, service := newReviewServiceFixture()

		created := &entities.Review{ID: 1, BookingID: 42, UserID: "user-1", ProviderID: 7, Rating: 4}
		reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Review) bool {
			return r.UserID == "user-1" && r.Rating == 4 && r.ProviderID == 7
		})).Return(created, nil)
		reviewRepo.On("AggregateByProvider", mock.Anything, int64(7)).Return(4.333333, 3, nil)
		providerRepo.On("UpdateRating", mock.Anything, int64(7), 4.3, 3).Return(nil)

		result, err := service.CreateReview(context.Background(), "user-1", validRequest)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		providerRepo.AssertExpectations(t)
	})

	t.Run("rejects a rating outside 1 to 5", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			reviewRepo, _, service := newReviewServiceFixture()

			req := &services.CreateReviewRequest{BookingID: 42, ProviderID: 7, Rating: rating}
			_, err := service.CreateReview(context.Background(), "user-1", req)

			appErr, ok := apperrors.AsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	})

	t.Run("keeps the review when the rating recompute fails", func(t *testing.T) {
		reviewRepo, providerRepo, service := newReviewServiceFixture()

		created := &entities.Review{ID: 1, BookingID: 42, UserID: "user-1", ProviderID: 7, Rating: 4}
		reviewRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil)
		reviewRepo.On("AggregateByProvider", mock.Anything, int64(7)).
			Return(float64(0), 0, errors.New("query failed"))

		result, err := service.CreateReview(context.Background(), "user-1", validRequest)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		providerRepo.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails when the review cannot be persisted", func(t *testing.T) {
		reviewRepo, _, service := newReviewServiceFixture()

		reviewRepo.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewInternalError("failed to create review", errors.New("constraint violation")))

		_, err := service.CreateReview(context.Background(), "user-1", validRequest)

		assert.Error(t, err)
		reviewRepo.AssertNotCalled(t, "AggregateByProvider", mock.Anything, mock.Anything)
	})
}

func TestReviewService_ListProviderReviews(t *testing.T) {
	t.Run("rejects a non-positive provider id", func(t *testing.T) {
		_, _, service := newReviewServiceFixture()

		_, err := service.ListProviderReviews(context.Background(), 0)

		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})
}
