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

// BookingAdapter implements the BookingRepository interface
type BookingAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBookingAdapter creates a new booking adapter
func NewBookingAdapter(client *postgres.Client) repositories.BookingRepository {
	return &BookingAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var bookingJoinedColumns = []interface{}{
	"bookings.id", "bookings.user_id", "bookings.provider_id",
	"bookings.booking_date", "bookings.duration", "bookings.total_amount",
	"bookings.address", "bookings.special_instructions", "bookings.status",
	"bookings.booked_by_relative", "bookings.relative_id",
	"bookings.sms_notification_sent", "bookings.created_at", "bookings.updated_at",
	"service_providers.id", "service_providers.name", "service_providers.service_type",
	"service_providers.phone", "service_providers.email", "service_providers.experience",
	"service_providers.hourly_rate", "service_providers.location",
	"service_providers.available_from", "service_providers.available_to",
	"service_providers.rating", "service_providers.total_reviews",
	"service_providers.is_active", "service_providers.specialization",
	"service_providers.created_at",
}

// Create persists a new booking and returns it with its assigned ID
func (a *BookingAdapter) Create(ctx context.Context, booking *entities.Booking) (*entities.Booking, error) {
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	var relativeID sql.NullString
	if booking.RelativeID != nil {
		relativeID = sql.NullString{String: *booking.RelativeID, Valid: true}
	}

	record := goqu.Record{
		"user_id":               booking.UserID,
		"provider_id":           booking.ProviderID,
		"booking_date":          booking.BookingDate,
		"duration":              booking.Duration,
		"total_amount":          booking.TotalAmount,
		"address":               booking.Address,
		"special_instructions":  sql.NullString{String: booking.SpecialInstructions, Valid: booking.SpecialInstructions != ""},
		"status":                booking.Status,
		"booked_by_relative":    booking.BookedByRelative,
		"relative_id":           relativeID,
		"sms_notification_sent": booking.SMSNotificationSent,
		"created_at":            booking.CreatedAt,
		"updated_at":            booking.UpdatedAt,
	}

	query, args, err := a.db.Insert("bookings").
		Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build booking insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&booking.ID); err != nil {
		return nil, apperrors.NewInternalError("failed to create booking", err)
	}

	return booking, nil
}

// GetByID retrieves a booking joined with its provider snapshot
func (a *BookingAdapter) GetByID(ctx context.Context, id int64) (*entities.BookingWithProvider, error) {
	query, args, err := a.db.Select(bookingJoinedColumns...).
		From("bookings").
		InnerJoin(
			goqu.T("service_providers"),
			goqu.On(goqu.I("bookings.provider_id").Eq(goqu.I("service_providers.id"))),
		).
		Where(goqu.Ex{"bookings.id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build booking query", err)
	}

	booking, err := scanBookingWithProvider(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("booking with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get booking", err)
	}

	return booking, nil
}

// ListByUser retrieves a user's bookings joined with their providers, newest first
func (a *BookingAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.BookingWithProvider, error) {
	query, args, err := a.db.Select(bookingJoinedColumns...).
		From("bookings").
		InnerJoin(
			goqu.T("service_providers"),
			goqu.On(goqu.I("bookings.provider_id").Eq(goqu.I("service_providers.id"))),
		).
		Where(goqu.Ex{"bookings.user_id": userID}).
		Order(goqu.I("bookings.created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build booking list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*entities.BookingWithProvider
	for rows.Next() {
		booking, err := scanBookingWithProvider(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan booking", err)
		}
		result = append(result, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate bookings", err)
	}

	return result, nil
}

// UpdateStatus updates a booking's status
func (a *BookingAdapter) UpdateStatus(ctx context.Context, id int64, status entities.BookingStatus) error {
	query, args, err := a.db.Update("bookings").
		Set(goqu.Record{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build status update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update booking status", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to check status update result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("booking with id %d not found", id))
	}

	return nil
}

// MarkNotificationSent sets the sms_notification_sent flag
func (a *BookingAdapter) MarkNotificationSent(ctx context.Context, id int64) error {
	query, args, err := a.db.Update("bookings").
		Set(goqu.Record{
			"sms_notification_sent": true,
			"updated_at":            time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build notification flag query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to mark booking notified", err)
	}

	return nil
}

func scanBookingWithProvider(row rowScanner) (*entities.BookingWithProvider, error) {
	b := &entities.BookingWithProvider{}
	var specialInstructions, relativeID sql.NullString
	var provEmail, provFrom, provTo, provSpecialization sql.NullString
	var provExperience sql.NullInt64

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ProviderID,
		&b.BookingDate,
		&b.Duration,
		&b.TotalAmount,
		&b.Address,
		&specialInstructions,
		&b.Status,
		&b.BookedByRelative,
		&relativeID,
		&b.SMSNotificationSent,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.Provider.ID,
		&b.Provider.Name,
		&b.Provider.ServiceType,
		&b.Provider.Phone,
		&provEmail,
		&provExperience,
		&b.Provider.HourlyRate,
		&b.Provider.Location,
		&provFrom,
		&provTo,
		&b.Provider.Rating,
		&b.Provider.TotalReviews,
		&b.Provider.IsActive,
		&provSpecialization,
		&b.Provider.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.SpecialInstructions = specialInstructions.String
	if relativeID.Valid {
		b.RelativeID = &relativeID.String
	}
	b.Provider.Email = provEmail.String
	b.Provider.Experience = int(provExperience.Int64)
	b.Provider.AvailableFrom = provFrom.String
	b.Provider.AvailableTo = provTo.String
	b.Provider.Specialization = provSpecialization.String

	return b, nil
}
