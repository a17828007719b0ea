package entities

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a scheduled home-service booking. TotalAmount is fixed
// at creation time from the provider's hourly rate and is never recomputed,
// even if the provider's rate changes later.
type Booking struct {
	ID                  int64         `json:"id" db:"id"`
	UserID              string        `json:"user_id" db:"user_id"`
	ProviderID          int64         `json:"provider_id" db:"provider_id"`
	BookingDate         time.Time     `json:"booking_date" db:"booking_date"`
	Duration            int           `json:"duration" db:"duration"`
	TotalAmount         float64       `json:"total_amount" db:"total_amount"`
	Address             string        `json:"address" db:"address"`
	SpecialInstructions string        `json:"special_instructions" db:"special_instructions"`
	Status              BookingStatus `json:"status" db:"status"`
	BookedByRelative    bool          `json:"booked_by_relative" db:"booked_by_relative"`
	RelativeID          *string       `json:"relative_id,omitempty" db:"relative_id"`
	SMSNotificationSent bool          `json:"sms_notification_sent" db:"sms_notification_sent"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingWithProvider is a booking joined with a snapshot of its provider
type BookingWithProvider struct {
	Booking
	Provider ServiceProvider `json:"provider"`
}
