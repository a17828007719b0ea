package services

import (
	"context"
	"strings"
	"time"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/pkg/errors"
)

// ProviderService exposes the service-provider catalog.
type ProviderService struct {
	providerRepo repositories.ProviderRepository
}

func NewProviderService(providerRepo repositories.ProviderRepository) *ProviderService {
	return &ProviderService{providerRepo: providerRepo}
}

// ListProviders returns active providers, optionally narrowed by service type
// and location, best rated first.
func (s *ProviderService) ListProviders(ctx context.Context, serviceType, location string) ([]*entities.ServiceProvider, error) {
	filter := repositories.ProviderFilter{
		Location: strings.TrimSpace(location),
	}
	if st := strings.TrimSpace(serviceType); st != "" {
		typed := entities.ServiceType(st)
		if !typed.Valid() {
			return nil, errors.NewValidationError("unknown service type: " + st)
		}
		filter.ServiceType = typed
	}
	return s.providerRepo.List(ctx, filter)
}

// GetProvider returns one provider by id.
func (s *ProviderService) GetProvider(ctx context.Context, id int64) (*entities.ServiceProvider, error) {
	if id <= 0 {
		return nil, errors.NewValidationError("provider id must be a positive integer")
	}
	return s.providerRepo.GetByID(ctx, id)
}

// RegisterProvider validates and persists a new provider. Rating and review
// count always start at zero regardless of what the caller supplies.
func (s *ProviderService) RegisterProvider(ctx context.Context, provider *entities.ServiceProvider) (*entities.ServiceProvider, error) {
	if err := validateProvider(provider); err != nil {
		return nil, err
	}

	provider.Name = strings.TrimSpace(provider.Name)
	provider.Rating = 0
	provider.TotalReviews = 0
	provider.IsActive = true

	return s.providerRepo.Create(ctx, provider)
}

func validateProvider(provider *entities.ServiceProvider) error {
	var fields []errors.FieldError

	if strings.TrimSpace(provider.Name) == "" {
		fields = append(fields, errors.FieldError{Field: "name", Message: "name is required"})
	}
	if !provider.ServiceType.Valid() {
		fields = append(fields, errors.FieldError{Field: "service_type", Message: "service_type must be one of nurse, electrician, plumber, beautician, cab_driver"})
	}
	if strings.TrimSpace(provider.Phone) == "" {
		fields = append(fields, errors.FieldError{Field: "phone", Message: "phone is required"})
	}
	if provider.HourlyRate <= 0 {
		fields = append(fields, errors.FieldError{Field: "hourly_rate", Message: "hourly_rate must be greater than zero"})
	}
	if provider.Experience < 0 {
		fields = append(fields, errors.FieldError{Field: "experience", Message: "experience cannot be negative"})
	}
	fields = append(fields, validateAvailability(provider.AvailableFrom, provider.AvailableTo)...)

	if len(fields) > 0 {
		return errors.NewFieldValidationError("provider failed validation", fields)
	}
	return nil
}

// validateAvailability checks the daily availability window. Both bounds are
// HH:MM wall-clock times and the window must not be inverted.
func validateAvailability(from, to string) []errors.FieldError {
	var fields []errors.FieldError

	start, err := time.Parse("15:04", from)
	if err != nil {
		fields = append(fields, errors.FieldError{Field: "available_from", Message: "available_from must be in HH:MM format"})
	}
	end, err := time.Parse("15:04", to)
	if err != nil {
		fields = append(fields, errors.FieldError{Field: "available_to", Message: "available_to must be in HH:MM format"})
	}
	if len(fields) == 0 && !start.Before(end) {
		fields = append(fields, errors.FieldError{Field: "available_to", Message: "available_to must be later than available_from"})
	}
	return fields
}
