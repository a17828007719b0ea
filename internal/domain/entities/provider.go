package entities

import (
	"time"
)

// ServiceType is the fixed set of home-service categories
type ServiceType string

const (
	ServiceTypeNurse       ServiceType = "nurse"
	ServiceTypeElectrician ServiceType = "electrician"
	ServiceTypePlumber     ServiceType = "plumber"
	ServiceTypeBeautician  ServiceType = "beautician"
	ServiceTypeCabDriver   ServiceType = "cab_driver"
)

// Valid reports whether the service type is one of the supported categories
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeNurse, ServiceTypeElectrician, ServiceTypePlumber,
		ServiceTypeBeautician, ServiceTypeCabDriver:
		return true
	}
	return false
}

// ServiceProvider represents a service professional offering a fixed-category
// service at an hourly rate. Rating and TotalReviews are derived fields,
// written only by the rating aggregation path.
type ServiceProvider struct {
	ID             int64       `json:"id" db:"id"`
	Name           string      `json:"name" db:"name"`
	ServiceType    ServiceType `json:"service_type" db:"service_type"`
	Phone          string      `json:"phone" db:"phone"`
	Email          string      `json:"email" db:"email"`
	Experience     int         `json:"experience" db:"experience"`
	HourlyRate     float64     `json:"hourly_rate" db:"hourly_rate"`
	Location       string      `json:"location" db:"location"`
	AvailableFrom  string      `json:"available_from" db:"available_from"`
	AvailableTo    string      `json:"available_to" db:"available_to"`
	Rating         float64     `json:"rating" db:"rating"`
	TotalReviews   int         `json:"total_reviews" db:"total_reviews"`
	IsActive       bool        `json:"is_active" db:"is_active"`
	Specialization string      `json:"specialization" db:"specialization"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
}
