package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	apperrors "github.com/aashray-care/aashray-backend/pkg/errors"
)

func TestRelativeService_LinkRelative(t *testing.T) {
	t.Run("links a relative with booking permission by default", func(t *testing.T) {
		relativeRepo := new(MockRelativeRepository)
		userRepo := new(MockUserRepository)
		service := services.NewRelativeService(relativeRepo, userRepo)

		userRepo.On("GetByID", mock.Anything, "relative-1").
			Return(&entities.User{ID: "relative-1", UserType: entities.UserTypeRelative}, nil)
		relativeRepo.On("GetEdge", mock.Anything, "senior-1", "relative-1").Return(nil, nil)
		relativeRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Relative) bool {
			return r.SeniorCitizenID == "senior-1" && r.RelativeID == "relative-1" && r.CanBookServices
		})).Return(&entities.Relative{ID: 1, CanBookServices: true}, nil)

		result, err := service.LinkRelative(context.Background(), "senior-1", &services.LinkRelativeRequest{
			RelativeID:   "relative-1",
			Relationship: "daughter",
		})

		assert.NoError(t, err)
		assert.True(t, result.CanBookServices)
	})

	t.Run("honors an explicit permission opt-out", func(t *testing.T) {
		relativeRepo := new(MockRelativeRepository)
		userRepo := new(MockUserRepository)
		service := services.NewRelativeService(relativeRepo, userRepo)

		userRepo.On("GetByID", mock.Anything, "relative-1").
			Return(&entities.User{ID: "relative-1"}, nil)
		relativeRepo.On("GetEdge", mock.Anything, "senior-1", "relative-1").Return(nil, nil)
		relativeRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Relative) bool {
			return !r.CanBookServices
		})).Return(&entities.Relative{ID: 1}, nil)

		canBook := false
		_, err := service.LinkRelative(context.Background(), "senior-1", &services.LinkRelativeRequest{
			RelativeID:      "relative-1",
			Relationship:    "son",
			CanBookServices: &canBook,
		})

		assert.NoError(t, err)
		relativeRepo.AssertExpectations(t)
	})

	t.Run("rejects linking a user to themselves", func(t *testing.T) {
		relativeRepo := new(MockRelativeRepository)
		service := services.NewRelativeService(relativeRepo, new(MockUserRepository))

		_, err := service.LinkRelative(context.Background(), "senior-1", &services.LinkRelativeRequest{
			RelativeID:   "senior-1",
			Relationship: "self",
		})

		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		relativeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a duplicate link", func(t *testing.T) {
		relativeRepo := new(MockRelativeRepository)
		userRepo := new(MockUserRepository)
		service := services.NewRelativeService(relativeRepo, userRepo)

		userRepo.On("GetByID", mock.Anything, "relative-1").
			Return(&entities.User{ID: "relative-1"}, nil)
		relativeRepo.On("GetEdge", mock.Anything, "senior-1", "relative-1").
			Return(&entities.Relative{ID: 1}, nil)

		_, err := service.LinkRelative(context.Background(), "senior-1", &services.LinkRelativeRequest{
			RelativeID:   "relative-1",
			Relationship: "daughter",
		})

		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
		relativeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a relative that does not exist", func(t *testing.T) {
		relativeRepo := new(MockRelativeRepository)
		userRepo := new(MockUserRepository)
		service := services.NewRelativeService(relativeRepo, userRepo)

		userRepo.On("GetByID", mock.Anything, "ghost").
			Return(nil, apperrors.NewNotFoundError("user not found"))

		_, err := service.LinkRelative(context.Background(), "senior-1", &services.LinkRelativeRequest{
			RelativeID:   "ghost",
			Relationship: "daughter",
		})

		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})
}
