package services

import (
	"context"
	"strings"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/pkg/errors"
)

// UpdateProfileRequest carries the profile fields a user may change. The user
// id, email ownership and account lifecycle stay with the identity provider.
type UpdateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	UserType  string `json:"user_type"`
}

// UserService reads and upserts locally mirrored user profiles.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser returns the profile for the given identity-provider user id.
func (s *UserService) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpsertProfile creates or updates the caller's profile mirror. The phone
// number matters most here, it is where booking and SOS alerts go.
func (s *UserService) UpsertProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*entities.User, error) {
	userType := entities.UserType(strings.TrimSpace(req.UserType))
	if userType == "" {
		userType = entities.UserTypeSeniorCitizen
	}
	if userType != entities.UserTypeSeniorCitizen && userType != entities.UserTypeRelative {
		return nil, errors.NewValidationError("user_type must be senior_citizen or relative")
	}

	user := &entities.User{
		ID:        userID,
		Email:     strings.TrimSpace(req.Email),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		UserType:  userType,
	}
	return s.userRepo.Upsert(ctx, user)
}
