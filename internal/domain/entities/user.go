package entities

import (
	"time"
)

// UserType distinguishes primary account holders from linked relatives
type UserType string

const (
	UserTypeSeniorCitizen UserType = "senior_citizen"
	UserTypeRelative      UserType = "relative"
)

// User represents a user in the system. IDs are assigned by the external
// identity provider, so they are opaque strings rather than serials.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	UserType  UserType  `json:"user_type" db:"user_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FullName returns the user's display name as used in notifications
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
