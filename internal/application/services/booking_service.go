package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/providers"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/observability"
	"github.com/aashray-care/aashray-backend/pkg/errors"
)

const minAddressLength = 10

// CreateBookingRequest carries the caller-supplied fields for a new booking.
// The price and the owning user are never taken from the request.
type CreateBookingRequest struct {
	ProviderID          int64     `json:"provider_id"`
	BookingDate         time.Time `json:"booking_date"`
	Duration            int       `json:"duration"`
	Address             string    `json:"address"`
	SpecialInstructions string    `json:"special_instructions"`
	BookedByRelative    bool      `json:"booked_by_relative"`
	RelativeID          *string   `json:"relative_id,omitempty"`
}

// BookingService owns the booking lifecycle: admission, pricing, persistence,
// notification and event publication.
type BookingService struct {
	bookingRepo  repositories.BookingRepository
	providerRepo repositories.ProviderRepository
	userRepo     repositories.UserRepository
	delegation   *DelegationService
	notification *NotificationService
	eventBus     providers.EventBus
}

// NewBookingService builds the service. eventBus may be nil when no bus is
// configured; events are then skipped.
func NewBookingService(
	bookingRepo repositories.BookingRepository,
	providerRepo repositories.ProviderRepository,
	userRepo repositories.UserRepository,
	delegation *DelegationService,
	notification *NotificationService,
	eventBus providers.EventBus,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		userRepo:     userRepo,
		delegation:   delegation,
		notification: notification,
		eventBus:     eventBus,
	}
}

// CreateBooking admits, prices and persists a new booking for the senior
// citizen identified by userID. When the request is made by a relative on the
// senior's behalf, the relative must hold booking permission. The total amount
// is computed here from the provider's current hourly rate and fixed for the
// life of the booking. Notification failures never fail the booking.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, req *CreateBookingRequest) (*entities.BookingWithProvider, error) {
	if err := validateCreateBooking(req); err != nil {
		return nil, err
	}

	if req.BookedByRelative {
		allowed, err := s.delegation.CanBookFor(ctx, userID, *req.RelativeID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, errors.NewUnauthorizedError("relative does not have permission to book services for this user")
		}
	} else {
		// A relative id only makes sense on delegated bookings. Drop any
		// stray value so direct bookings never persist one.
		req.RelativeID = nil
	}

	provider, err := s.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if !provider.IsActive {
		return nil, errors.NewValidationError("service provider is not currently active")
	}

	totalAmount := math.Round(provider.HourlyRate*float64(req.Duration)*100) / 100

	booking := &entities.Booking{
		UserID:              userID,
		ProviderID:          provider.ID,
		BookingDate:         req.BookingDate,
		Duration:            req.Duration,
		TotalAmount:         totalAmount,
		Address:             strings.TrimSpace(req.Address),
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		Status:              entities.BookingStatusPending,
		BookedByRelative:    req.BookedByRelative,
		RelativeID:          req.RelativeID,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, created, provider)
	s.publishEvent(ctx, entities.BookingEventTypeCreated, created.ID, created.ProviderID, created.UserID)

	return s.bookingRepo.GetByID(ctx, created.ID)
}

// GetBooking returns one booking with its provider snapshot. Only the user
// who owns the booking may read it.
func (s *BookingService) GetBooking(ctx context.Context, userID string, bookingID int64) (*entities.BookingWithProvider, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, errors.NewUnauthorizedError("you do not have access to this booking")
	}
	return booking, nil
}

// ListUserBookings returns the user's bookings newest first, each with its
// provider snapshot.
func (s *BookingService) ListUserBookings(ctx context.Context, userID string) ([]*entities.BookingWithProvider, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// CancelBooking moves an owned booking to cancelled. Completed bookings and
// bookings that are already cancelled stay as they are.
func (s *BookingService) CancelBooking(ctx context.Context, userID string, bookingID int64) (*entities.BookingWithProvider, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, errors.NewUnauthorizedError("you do not have access to this booking")
	}
	switch booking.Status {
	case entities.BookingStatusCompleted:
		return nil, errors.NewConflictError("completed bookings cannot be cancelled")
	case entities.BookingStatusCancelled:
		return booking, nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, entities.BookingStatusCancelled); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, entities.BookingEventTypeStatusChanged, booking.ID, booking.ProviderID, booking.UserID)

	return s.bookingRepo.GetByID(ctx, bookingID)
}

// notifyCreated sends the confirmation and provider alert SMS and records on
// the booking whether every send went through. Failures are logged only.
func (s *BookingService) notifyCreated(ctx context.Context, booking *entities.Booking, provider *entities.ServiceProvider) {
	requester, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		observability.GetLogger().Warn().
			Err(err).
			Int64("booking_id", booking.ID).
			Msg("Could not load requester for booking notification")
		requester = nil
	}

	allSent := s.notification.NotifyBookingCreated(ctx, booking, requester, provider)
	if !allSent {
		return
	}
	if err := s.bookingRepo.MarkNotificationSent(ctx, booking.ID); err != nil {
		observability.GetLogger().Warn().
			Err(err).
			Int64("booking_id", booking.ID).
			Msg("Failed to mark booking notification as sent")
	}
}

func (s *BookingService) publishEvent(ctx context.Context, eventType entities.BookingEventType, bookingID, providerID int64, userID string) {
	if s.eventBus == nil {
		return
	}
	event := entities.NewBookingEvent(eventType, bookingID, providerID, userID)
	if err := s.eventBus.Publish(ctx, providers.EventChannelBookings, event); err != nil {
		observability.GetLogger().Warn().
			Err(err).
			Str("event_type", string(eventType)).
			Int64("booking_id", bookingID).
			Msg("Failed to publish booking event")
	}
}

func validateCreateBooking(req *CreateBookingRequest) error {
	var fields []errors.FieldError

	if req.ProviderID <= 0 {
		fields = append(fields, errors.FieldError{Field: "provider_id", Message: "provider_id is required"})
	}
	if req.Duration < 1 {
		fields = append(fields, errors.FieldError{Field: "duration", Message: "duration must be at least 1 hour"})
	}
	if len(strings.TrimSpace(req.Address)) < minAddressLength {
		fields = append(fields, errors.FieldError{Field: "address", Message: "address must be at least 10 characters"})
	}
	if req.BookingDate.IsZero() {
		fields = append(fields, errors.FieldError{Field: "booking_date", Message: "booking_date is required"})
	} else if req.BookingDate.Before(time.Now()) {
		fields = append(fields, errors.FieldError{Field: "booking_date", Message: "booking_date must be in the future"})
	}
	if req.BookedByRelative && (req.RelativeID == nil || strings.TrimSpace(*req.RelativeID) == "") {
		fields = append(fields, errors.FieldError{Field: "relative_id", Message: "relative_id is required when booking on behalf of a senior citizen"})
	}

	if len(fields) > 0 {
		return errors.NewFieldValidationError("booking request failed validation", fields)
	}
	return nil
}
