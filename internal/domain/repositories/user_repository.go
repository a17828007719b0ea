package repositories

import (
	"context"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// Upsert creates or updates a user record from the identity provider
	Upsert(ctx context.Context, user *entities.User) (*entities.User, error)
}
