package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/aashray-care/aashray-backend/pkg/errors"
)

// ProviderAdapter implements the ProviderRepository interface
type ProviderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProviderAdapter creates a new service provider adapter
func NewProviderAdapter(client *postgres.Client) repositories.ProviderRepository {
	return &ProviderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var providerColumns = []interface{}{
	"id", "name", "service_type", "phone", "email", "experience",
	"hourly_rate", "location", "available_from", "available_to",
	"rating", "total_reviews", "is_active", "specialization", "created_at",
}

// Create creates a new service provider
func (a *ProviderAdapter) Create(ctx context.Context, provider *entities.ServiceProvider) (*entities.ServiceProvider, error) {
	record := goqu.Record{
		"name":           provider.Name,
		"service_type":   provider.ServiceType,
		"phone":          provider.Phone,
		"email":          sql.NullString{String: provider.Email, Valid: provider.Email != ""},
		"experience":     provider.Experience,
		"hourly_rate":    provider.HourlyRate,
		"location":       provider.Location,
		"available_from": sql.NullString{String: provider.AvailableFrom, Valid: provider.AvailableFrom != ""},
		"available_to":   sql.NullString{String: provider.AvailableTo, Valid: provider.AvailableTo != ""},
		"rating":         provider.Rating,
		"total_reviews":  provider.TotalReviews,
		"is_active":      provider.IsActive,
		"specialization": sql.NullString{String: provider.Specialization, Valid: provider.Specialization != ""},
		"created_at":     provider.CreatedAt,
	}

	query, args, err := a.db.Insert("service_providers").
		Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&provider.ID); err != nil {
		return nil, apperrors.NewInternalError("failed to create service provider", err)
	}

	return provider, nil
}

// GetByID retrieves a service provider by ID
func (a *ProviderAdapter) GetByID(ctx context.Context, id int64) (*entities.ServiceProvider, error) {
	query, args, err := a.db.Select(providerColumns...).
		From("service_providers").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider query", err)
	}

	provider, err := scanProvider(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("service provider with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get service provider", err)
	}

	return provider, nil
}

// List retrieves active providers best-rated first
func (a *ProviderAdapter) List(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.ServiceProvider, error) {
	ds := a.db.Select(providerColumns...).
		From("service_providers").
		Where(goqu.Ex{"is_active": true})

	if filter.ServiceType != "" {
		ds = ds.Where(goqu.Ex{"service_type": filter.ServiceType})
	}
	if filter.Location != "" {
		ds = ds.Where(goqu.I("location").ILike("%" + filter.Location + "%"))
	}

	query, args, err := ds.Order(goqu.I("rating").Desc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list service providers", err)
	}
	defer rows.Close()

	var result []*entities.ServiceProvider
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan service provider", err)
		}
		result = append(result, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate service providers", err)
	}

	return result, nil
}

// UpdateRating writes the derived rating fields
func (a *ProviderAdapter) UpdateRating(ctx context.Context, id int64, rating float64, totalReviews int) error {
	query, args, err := a.db.Update("service_providers").
		Set(goqu.Record{
			"rating":        rating,
			"total_reviews": totalReviews,
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build rating update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update provider rating", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to check rating update result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("service provider with id %d not found", id))
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProvider(row rowScanner) (*entities.ServiceProvider, error) {
	provider := &entities.ServiceProvider{}
	var email, availableFrom, availableTo, specialization sql.NullString
	var experience sql.NullInt64

	err := row.Scan(
		&provider.ID,
		&provider.Name,
		&provider.ServiceType,
		&provider.Phone,
		&email,
		&experience,
		&provider.HourlyRate,
		&provider.Location,
		&availableFrom,
		&availableTo,
		&provider.Rating,
		&provider.TotalReviews,
		&provider.IsActive,
		&specialization,
		&provider.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	provider.Email = email.String
	provider.Experience = int(experience.Int64)
	provider.AvailableFrom = availableFrom.String
	provider.AvailableTo = availableTo.String
	provider.Specialization = specialization.String

	return provider, nil
}
