package services

import (
	"context"
	"strings"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/pkg/errors"
)

// AddEmergencyContactRequest carries the fields for a new emergency contact.
type AddEmergencyContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
	IsPrimary    bool   `json:"is_primary"`
}

// EmergencyContactService manages the contacts reached by an SOS broadcast.
type EmergencyContactService struct {
	contactRepo repositories.EmergencyContactRepository
}

func NewEmergencyContactService(contactRepo repositories.EmergencyContactRepository) *EmergencyContactService {
	return &EmergencyContactService{contactRepo: contactRepo}
}

// AddContact validates and persists an emergency contact for the user.
func (s *EmergencyContactService) AddContact(ctx context.Context, userID string, req *AddEmergencyContactRequest) (*entities.EmergencyContact, error) {
	var fields []errors.FieldError
	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, errors.FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields = append(fields, errors.FieldError{Field: "phone", Message: "phone is required"})
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError("emergency contact failed validation", fields)
	}

	contact := &entities.EmergencyContact{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Relationship: strings.TrimSpace(req.Relationship),
		IsPrimary:    req.IsPrimary,
	}
	return s.contactRepo.Create(ctx, contact)
}

// ListContacts returns the user's emergency contacts, primary first.
func (s *EmergencyContactService) ListContacts(ctx context.Context, userID string) ([]*entities.EmergencyContact, error) {
	return s.contactRepo.ListByUser(ctx, userID)
}
