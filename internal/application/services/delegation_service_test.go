package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

func TestDelegationService_CanBookFor(t *testing.T) {
	t.Run("grants access when the link carries booking permission", func(t *testing.T) {
		repo := new(MockRelativeRepository)
		service := services.NewDelegationService(repo)

		repo.On("GetEdge", mock.Anything, "senior-1", "relative-1").
			Return(&entities.Relative{SeniorCitizenID: "senior-1", RelativeID: "relative-1", CanBookServices: true}, nil)

		allowed, err := service.CanBookFor(context.Background(), "senior-1", "relative-1")

		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("denies access when booking permission is withheld", func(t *testing.T) {
		repo := new(MockRelativeRepository)
		service := services.NewDelegationService(repo)

		repo.On("GetEdge", mock.Anything, "senior-1", "relative-1").
			Return(&entities.Relative{SeniorCitizenID: "senior-1", RelativeID: "relative-1", CanBookServices: false}, nil)

		allowed, err := service.CanBookFor(context.Background(), "senior-1", "relative-1")

		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("denies access when no link exists", func(t *testing.T) {
		repo := new(MockRelativeRepository)
		service := services.NewDelegationService(repo)

		repo.On("GetEdge", mock.Anything, "senior-1", "stranger").Return(nil, nil)

		allowed, err := service.CanBookFor(context.Background(), "senior-1", "stranger")

		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockRelativeRepository)
		service := services.NewDelegationService(repo)

		repo.On("GetEdge", mock.Anything, "senior-1", "relative-1").
			Return(nil, errors.New("connection refused"))

		allowed, err := service.CanBookFor(context.Background(), "senior-1", "relative-1")

		assert.Error(t, err)
		assert.False(t, allowed)
	})
}
