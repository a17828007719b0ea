package entities

import "time"

// EmergencyContact is a person notified during an SOS broadcast. Contacts
// are managed by the profile path; the core only reads them.
type EmergencyContact struct {
	ID           int64     `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Relationship string    `json:"relationship" db:"relationship"`
	IsPrimary    bool      `json:"is_primary" db:"is_primary"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SOSResult summarizes an emergency broadcast. A failed send excludes that
// contact from ContactsNotified but never aborts the rest of the fan-out.
type SOSResult struct {
	ContactsNotified int `json:"contactsNotified"`
	TotalContacts    int `json:"totalContacts"`
}
