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

// ReviewAdapter implements the ReviewRepository interface
type ReviewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new review and returns it with its assigned ID
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) (*entities.Review, error) {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	record := goqu.Record{
		"booking_id":  review.BookingID,
		"user_id":     review.UserID,
		"provider_id": review.ProviderID,
		"rating":      review.Rating,
		"comment":     sql.NullString{String: review.Comment, Valid: review.Comment != ""},
		"created_at":  review.CreatedAt,
	}

	query, args, err := a.db.Insert("reviews").
		Rows(record).
		Returning("id").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&review.ID); err != nil {
		return nil, apperrors.NewInternalError("failed to create review", err)
	}

	return review, nil
}

// ListByProvider retrieves a provider's reviews joined with their reviewers,
// newest first
func (a *ReviewAdapter) ListByProvider(ctx context.Context, providerID int64) ([]*entities.ReviewWithUser, error) {
	query, args, err := a.db.Select(
		"reviews.id", "reviews.booking_id", "reviews.user_id",
		"reviews.provider_id", "reviews.rating", "reviews.comment",
		"reviews.created_at",
		"users.id", "users.email", "users.first_name", "users.last_name",
		"users.phone", "users.address", "users.user_type",
		"users.created_at", "users.updated_at",
	).
		From("reviews").
		InnerJoin(
			goqu.T("users"),
			goqu.On(goqu.I("reviews.user_id").Eq(goqu.I("users.id"))),
		).
		Where(goqu.Ex{"reviews.provider_id": providerID}).
		Order(goqu.I("reviews.created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*entities.ReviewWithUser
	for rows.Next() {
		r := &entities.ReviewWithUser{}
		var comment sql.NullString
		var userEmail, userPhone, userAddress sql.NullString

		err := rows.Scan(
			&r.ID,
			&r.BookingID,
			&r.UserID,
			&r.ProviderID,
			&r.Rating,
			&comment,
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
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}

		r.Comment = comment.String
		r.User.Email = userEmail.String
		r.User.Phone = userPhone.String
		r.User.Address = userAddress.String

		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate reviews", err)
	}

	return result, nil
}

// AggregateByProvider computes the mean rating and review count over all
// reviews for a provider
func (a *ReviewAdapter) AggregateByProvider(ctx context.Context, providerID int64) (float64, int, error) {
	query, args, err := a.db.Select(
		goqu.COALESCE(goqu.AVG("rating"), 0).As("avg_rating"),
		goqu.COUNT("*").As("total_reviews"),
	).
		From("reviews").
		Where(goqu.Ex{"provider_id": providerID}).
		ToSQL()
	if err != nil {
		return 0, 0, apperrors.NewInternalError("failed to build rating aggregate query", err)
	}

	var avgRating float64
	var totalReviews int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&avgRating, &totalReviews); err != nil {
		return 0, 0, apperrors.NewInternalError("failed to aggregate provider rating", err)
	}

	return avgRating, totalReviews, nil
}
