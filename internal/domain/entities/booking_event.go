package entities

import (
	"time"

	"github.com/google/uuid"
)

// BookingEventType represents the type of booking lifecycle event
type BookingEventType string

const (
	BookingEventTypeCreated       BookingEventType = "booking_created"
	BookingEventTypeStatusChanged BookingEventType = "booking_status_changed"
	BookingEventTypeReviewCreated BookingEventType = "review_created"
)

// BookingEvent represents a booking lifecycle event published on the event bus
type BookingEvent struct {
	ID         string           `json:"id"`
	EventType  BookingEventType `json:"event_type"`
	BookingID  int64            `json:"booking_id,omitempty"`
	ProviderID int64            `json:"provider_id"`
	UserID     string           `json:"user_id,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

// NewBookingEvent creates a new booking event
func NewBookingEvent(eventType BookingEventType, bookingID, providerID int64, userID string) *BookingEvent {
	return &BookingEvent{
		ID:         uuid.New().String(),
		EventType:  eventType,
		BookingID:  bookingID,
		ProviderID: providerID,
		UserID:     userID,
		Timestamp:  time.Now().UTC(),
	}
}
