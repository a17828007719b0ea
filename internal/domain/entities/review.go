package entities

import "time"

// Review represents a user review of a service provider. Creating a review
// always triggers recomputation of the provider's aggregate rating.
type Review struct {
	ID         int64     `json:"id" db:"id"`
	BookingID  int64     `json:"booking_id" db:"booking_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	ProviderID int64     `json:"provider_id" db:"provider_id"`
	Rating     int       `json:"rating" db:"rating"` // 1-5
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ReviewWithUser is a review joined with the reviewer's user record
type ReviewWithUser struct {
	Review
	User User `json:"user"`
}
