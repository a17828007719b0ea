package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aashray-care/aashray-backend/internal/application/services"
)

func TestRatingService_OnReviewCreated(t *testing.T) {
	t.Run("rounds the mean rating to one decimal place", func(t *testing.T) {
		cases := []struct {
			name     string
			avg      float64
			total    int
			expected float64
		}{
			{"two thirds rounds up", 4.666666, 3, 4.7},
			{"midpoint rounds away from zero", 4.25, 4, 4.3},
			{"whole number stays whole", 5.0, 1, 5.0},
			{"no reviews yields zero", 0, 0, 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				reviewRepo := new(MockReviewRepository)
				providerRepo := new(MockProviderRepository)
				service := services.NewRatingService(reviewRepo, providerRepo)

				reviewRepo.On("AggregateByProvider", mock.Anything, int64(9)).
					Return(tc.avg, tc.total, nil)
				providerRepo.On("UpdateRating", mock.Anything, int64(9), tc.expected, tc.total).
					Return(nil)

				err := service.OnReviewCreated(context.Background(), 9)

				assert.NoError(t, err)
				providerRepo.AssertExpectations(t)
			})
		}
	})

	t.Run("propagates aggregation errors", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		providerRepo := new(MockProviderRepository)
		service := services.NewRatingService(reviewRepo, providerRepo)

		reviewRepo.On("AggregateByProvider", mock.Anything, int64(9)).
			Return(float64(0), 0, errors.New("query failed"))

		err := service.OnReviewCreated(context.Background(), 9)

		assert.Error(t, err)
		providerRepo.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("serializes concurrent recomputes for the same provider", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		providerRepo := new(MockProviderRepository)
		service := services.NewRatingService(reviewRepo, providerRepo)

		reviewRepo.On("AggregateByProvider", mock.Anything, int64(9)).
			Return(4.5, 10, nil)
		providerRepo.On("UpdateRating", mock.Anything, int64(9), 4.5, 10).
			Return(nil)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, service.OnReviewCreated(context.Background(), 9))
			}()
		}
		wg.Wait()

		providerRepo.AssertNumberOfCalls(t, "UpdateRating", 20)
	})
}
