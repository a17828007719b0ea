package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/aashray-care/aashray-backend/pkg/errors"
)

// RelativeAdapter implements the RelativeRepository interface
type RelativeAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRelativeAdapter creates a new relative adapter
func NewRelativeAdapter(client *postgres.Client) repositories.RelativeRepository {
	return &RelativeAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new relative edge and returns it with its assigned ID
func (a *RelativeAdapter) Create(ctx context.Context, relative *entities.Relative) (*entities.Relative, error) {
	if relative.CreatedAt.IsZero() {
		relative.CreatedAt = time.Now().UTC()
	}

	record := goqu.Record{
		"senior_citizen_id": relative.SeniorCitizenID,
		"relative_id":       relative.RelativeID,
		"relationship":      relative.Relationship,
		"can_book_services": relative.CanBookServices,
		"created_at":        relative.CreatedAt,
	}

	query, args, err := a.db.Insert("relatives").
		Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build relative insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&relative.ID); err != nil {
		return nil, apperrors.NewInternalError("failed to link relative", err)
	}

	return relative, nil
}

// ListBySeniorCitizen retrieves a senior citizen's relative edges joined with
// the relatives' user records
func (a *RelativeAdapter) ListBySeniorCitizen(ctx context.Context, seniorCitizenID string) ([]*entities.RelativeWithUser, error) {
	query, args, err := a.db.Select(
		"relatives.id", "relatives.senior_citizen_id", "relatives.relative_id",
		"relatives.relationship", "relatives.can_book_services", "relatives.created_at",
		"users.id", "users.email", "users.first_name", "users.last_name",
		"users.phone", "users.address", "users.user_type",
		"users.created_at", "users.updated_at",
	).
		From("relatives").
		InnerJoin(
			goqu.T("users"),
			goqu.On(goqu.I("relatives.relative_id").Eq(goqu.I("users.id"))),
		).
		Where(goqu.Ex{"relatives.senior_citizen_id": seniorCitizenID}).
		Order(goqu.I("relatives.created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build relative list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list relatives", err)
	}
	defer rows.Close()

	var result []*entities.RelativeWithUser
	for rows.Next() {
		r := &entities.RelativeWithUser{}
		var userEmail, userPhone, userAddress sql.NullString

		err := rows.Scan(
			&r.ID,
			&r.SeniorCitizenID,
			&r.RelativeID,
			&r.Relationship,
			&r.CanBookServices,
			&r.CreatedAt,
			&r.User.ID,
			&userEmail,
			&r.User.FirstName,
			&r.User.LastName,
			&userPhone,
			&userAddress,
			&r.User.UserType,
			&r.User.CreatedAt,
			&r.User.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan relative", err)
		}

		r.User.Email = userEmail.String
		r.User.Phone = userPhone.String
		r.User.Address = userAddress.String

		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate relatives", err)
	}

	return result, nil
}

// GetEdge looks up the directed edge seniorCitizenID -> relativeID. A missing
// edge returns (nil, nil), not an error.
func (a *RelativeAdapter) GetEdge(ctx context.Context, seniorCitizenID, relativeID string) (*entities.Relative, error) {
	query, args, err := a.db.Select(
		"id", "senior_citizen_id", "relative_id",
		"relationship", "can_book_services", "created_at",
	).
		From("relatives").
		Where(goqu.Ex{
			"senior_citizen_id": seniorCitizenID,
			"relative_id":       relativeID,
		}).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build relative edge query", err)
	}

	relative := &entities.Relative{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&relative.ID,
		&relative.SeniorCitizenID,
		&relative.RelativeID,
		&relative.Relationship,
		&relative.CanBookServices,
		&relative.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get relative edge", err)
	}

	return relative, nil
}
