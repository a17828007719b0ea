package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	apperrors "github.com/aashray-care/aashray-backend/pkg/errors"
)

func validProvider() *entities.ServiceProvider {
	return &entities.ServiceProvider{
		Name:          "Ramesh Kumar",
		ServiceType:   entities.ServiceTypeElectrician,
		Phone:         "+919800000010",
		HourlyRate:    350,
		Experience:    8,
		Location:      "Pune",
		AvailableFrom: "09:00",
		AvailableTo:   "18:00",
	}
}

func TestProviderService_RegisterProvider(t *testing.T) {
	t.Run("registers a provider with zeroed rating fields", func(t *testing.T) {
		repo := new(MockProviderRepository)
		service := services.NewProviderService(repo)

		provider := validProvider()
		provider.Rating = 4.9
		provider.TotalReviews = 120

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.ServiceProvider) bool {
			return p.Rating == 0 && p.TotalReviews == 0 && p.IsActive
		})).Return(&entities.ServiceProvider{ID: 1}, nil)

		_, err := service.RegisterProvider(context.Background(), provider)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an unknown service type", func(t *testing.T) {
		repo := new(MockProviderRepository)
		service := services.NewProviderService(repo)

		provider := validProvider()
		provider.ServiceType = "gardener"

		_, err := service.RegisterProvider(context.Background(), provider)

		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects an inverted availability window", func(t *testing.T) {
		repo := new(MockProviderRepository)
		service := services.NewProviderService(repo)

		provider := validProvider()
		provider.AvailableFrom = "18:00"
		provider.AvailableTo = "09:00"

		_, err := service.RegisterProvider(context.Background(), provider)

		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("rejects a malformed availability time", func(t *testing.T) {
		repo := new(MockProviderRepository)
		service := services.NewProviderService(repo)

		provider := validProvider()
		provider.AvailableFrom = "nine o'clock"

		_, err := service.RegisterProvider(context.Background(), provider)

		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})
}

func TestProviderService_ListProviders(t *testing.T) {
	t.Run("passes the service type filter through", func(t *testing.T) {
		repo := new(MockProviderRepository)
		service := services.NewProviderService(repo)

		repo.On("List", mock.Anything, repositories.ProviderFilter{
			ServiceType: entities.ServiceTypeNurse,
			Location:    "Pune",
		}).Return([]*entities.ServiceProvider{}, nil)

		_, err := service.ListProviders(context.Background(), "nurse", "Pune")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an unknown service type filter", func(t *testing.T) {
		repo := new(MockProviderRepository)
		service := services.NewProviderService(repo)

		_, err := service.ListProviders(context.Background(), "astrologer", "")

		appErr, ok := apperrors.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
