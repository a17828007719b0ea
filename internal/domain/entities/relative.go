package entities

import "time"

// Relative is a directed authorization edge from a senior citizen to a
// linked relative. CanBookServices controls whether the relative may create
// bookings on the senior citizen's behalf.
type Relative struct {
	ID              int64     `json:"id" db:"id"`
	SeniorCitizenID string    `json:"senior_citizen_id" db:"senior_citizen_id"`
	RelativeID      string    `json:"relative_id" db:"relative_id"`
	Relationship    string    `json:"relationship" db:"relationship"`
	CanBookServices bool      `json:"can_book_services" db:"can_book_services"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// RelativeWithUser is a relative edge joined with the relative's user record
type RelativeWithUser struct {
	Relative
	User User `json:"relative"`
}
