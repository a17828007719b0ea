package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/aashray-care/aashray-backend/pkg/errors"
)

// EmergencyContactAdapter implements the EmergencyContactRepository interface
type EmergencyContactAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewEmergencyContactAdapter creates a new emergency contact adapter
func NewEmergencyContactAdapter(client *postgres.Client) repositories.EmergencyContactRepository {
	return &EmergencyContactAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new emergency contact
func (a *EmergencyContactAdapter) Create(ctx context.Context, contact *entities.EmergencyContact) (*entities.EmergencyContact, error) {
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}

	record := goqu.Record{
		"user_id":      contact.UserID,
		"name":         contact.Name,
		"phone":        contact.Phone,
		"relationship": contact.Relationship,
		"is_primary":   contact.IsPrimary,
		"created_at":   contact.CreatedAt,
	}

	query, args, err := a.db.Insert("emergency_contacts").
		Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build contact insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&contact.ID); err != nil {
		return nil, apperrors.NewInternalError("failed to create emergency contact", err)
	}

	return contact, nil
}

// ListByUser retrieves a user's emergency contacts, primary contacts first
func (a *EmergencyContactAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.EmergencyContact, error) {
	query, args, err := a.db.Select(
		"id", "user_id", "name", "phone", "relationship", "is_primary", "created_at",
	).
		From("emergency_contacts").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("is_primary").Desc(), goqu.I("created_at").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build contact list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list emergency contacts", err)
	}
	defer rows.Close()

	var result []*entities.EmergencyContact
	for rows.Next() {
		contact := &entities.EmergencyContact{}
		err := rows.Scan(
			&contact.ID,
			&contact.UserID,
			&contact.Name,
			&contact.Phone,
			&contact.Relationship,
			&contact.IsPrimary,
			&contact.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan emergency contact", err)
		}
		result = append(result, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate emergency contacts", err)
	}

	return result, nil
}
