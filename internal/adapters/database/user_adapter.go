package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/aashray-care/aashray-backend/pkg/errors"
)

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query, args, err := a.db.Select(
		"id", "email", "first_name", "last_name", "phone", "address",
		"user_type", "created_at", "updated_at",
	).
		From("users").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	user := &entities.User{}
	var email, phone, address sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&email,
		&user.FirstName,
		&user.LastName,
		&phone,
		&address,
		&user.UserType,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	user.Email = email.String
	user.Phone = phone.String
	user.Address = address.String

	return user, nil
}

// Upsert creates or updates a user record from the identity provider
func (a *UserAdapter) Upsert(ctx context.Context, user *entities.User) (*entities.User, error) {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	if user.UserType == "" {
		user.UserType = entities.UserTypeSeniorCitizen
	}

	record := goqu.Record{
		"id":         user.ID,
		"email":      sql.NullString{String: user.Email, Valid: user.Email != ""},
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"phone":      sql.NullString{String: user.Phone, Valid: user.Phone != ""},
		"address":    sql.NullString{String: user.Address, Valid: user.Address != ""},
		"user_type":  user.UserType,
		"created_at": user.CreatedAt,
		"updated_at": user.UpdatedAt,
	}

	query, args, err := a.db.Insert("users").
		Rows(record).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"email":      sql.NullString{String: user.Email, Valid: user.Email != ""},
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"phone":      sql.NullString{String: user.Phone, Valid: user.Phone != ""},
			"address":    sql.NullString{String: user.Address, Valid: user.Address != ""},
			"user_type":  user.UserType,
			"updated_at": user.UpdatedAt,
		})).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to upsert user", err)
	}

	return a.GetByID(ctx, user.ID)
}
