package repositories

import (
	"context"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// Create persists a new booking and returns it with its assigned ID
	Create(ctx context.Context, booking *entities.Booking) (*entities.Booking, error)

	// GetByID retrieves a booking joined with its provider snapshot
	GetByID(ctx context.Context, id int64) (*entities.BookingWithProvider, error)

	// ListByUser retrieves a user's bookings joined with their providers,
	// newest first
	ListByUser(ctx context.Context, userID string) ([]*entities.BookingWithProvider, error)

	// UpdateStatus updates a booking's status
	UpdateStatus(ctx context.Context, id int64, status entities.BookingStatus) error

	// MarkNotificationSent sets the sms_notification_sent flag
	MarkNotificationSent(ctx context.Context, id int64) error
}
