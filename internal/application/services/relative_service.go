package services

import (
	"context"
	"strings"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/pkg/errors"
)

// LinkRelativeRequest carries the fields for linking a relative to the
// calling senior citizen.
type LinkRelativeRequest struct {
	RelativeID      string `json:"relative_id"`
	Relationship    string `json:"relationship"`
	CanBookServices *bool  `json:"can_book_services,omitempty"`
}

// RelativeService manages the authorization edges between senior citizens and
// their relatives.
type RelativeService struct {
	relativeRepo repositories.RelativeRepository
	userRepo     repositories.UserRepository
}

func NewRelativeService(
	relativeRepo repositories.RelativeRepository,
	userRepo repositories.UserRepository,
) *RelativeService {
	return &RelativeService{relativeRepo: relativeRepo, userRepo: userRepo}
}

// LinkRelative creates an edge from the calling senior citizen to an existing
// user. Booking permission defaults to granted unless explicitly withheld.
func (s *RelativeService) LinkRelative(ctx context.Context, seniorCitizenID string, req *LinkRelativeRequest) (*entities.Relative, error) {
	relativeID := strings.TrimSpace(req.RelativeID)
	relationship := strings.TrimSpace(req.Relationship)

	var fields []errors.FieldError
	if relativeID == "" {
		fields = append(fields, errors.FieldError{Field: "relative_id", Message: "relative_id is required"})
	}
	if relationship == "" {
		fields = append(fields, errors.FieldError{Field: "relationship", Message: "relationship is required"})
	}
	if relativeID != "" && relativeID == seniorCitizenID {
		fields = append(fields, errors.FieldError{Field: "relative_id", Message: "a user cannot be linked as their own relative"})
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError("relative link failed validation", fields)
	}

	if _, err := s.userRepo.GetByID(ctx, relativeID); err != nil {
		return nil, err
	}

	existing, err := s.relativeRepo.GetEdge(ctx, seniorCitizenID, relativeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("this relative is already linked")
	}

	canBook := true
	if req.CanBookServices != nil {
		canBook = *req.CanBookServices
	}

	relative := &entities.Relative{
		SeniorCitizenID: seniorCitizenID,
		RelativeID:      relativeID,
		Relationship:    relationship,
		CanBookServices: canBook,
	}
	return s.relativeRepo.Create(ctx, relative)
}

// ListRelatives returns all relatives linked to the senior citizen, each with
// the relative's user record attached.
func (s *RelativeService) ListRelatives(ctx context.Context, seniorCitizenID string) ([]*entities.RelativeWithUser, error) {
	return s.relativeRepo.ListBySeniorCitizen(ctx, seniorCitizenID)
}
