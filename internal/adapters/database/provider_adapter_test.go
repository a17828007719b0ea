package database_test

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashray-care/aashray-backend/internal/adapters/database"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	apperrors "github.com/aashray-care/aashray-backend/pkg/errors"
)

var providerRowColumns = []string{
	"id", "name", "service_type", "phone", "email", "experience",
	"hourly_rate", "location", "available_from", "available_to",
	"rating", "total_reviews", "is_active", "specialization", "created_at",
}

func providerRow(id int64, name string, rating float64) []driver.Value {
	createdAt := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, name, "nurse", "+919800000001", nil, 5,
		200.0, "Pune", "09:00", "18:00",
		rating, 12, true, nil, createdAt,
	}
}

func TestProviderAdapter_List(t *testing.T) {
	t.Run("queries active providers ordered by rating", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewProviderAdapter(client)

		rows := sqlmock.NewRows(providerRowColumns).
			AddRow(providerRow(7, "Sunita Sharma", 4.8)...).
			AddRow(providerRow(8, "Anil Kumar", 4.2)...)

		mock.ExpectQuery(`SELECT .+ FROM "service_providers" WHERE .+"is_active".+ ORDER BY "rating" DESC`).
			WillReturnRows(rows)

		providers, err := adapter.List(context.Background(), repositories.ProviderFilter{})

		require.NoError(t, err)
		require.Len(t, providers, 2)
		assert.Equal(t, "Sunita Sharma", providers[0].Name)
		assert.Equal(t, 4.8, providers[0].Rating)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters by service type and location substring", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewProviderAdapter(client)

		rows := sqlmock.NewRows(providerRowColumns).
			AddRow(providerRow(7, "Sunita Sharma", 4.8)...)

		mock.ExpectQuery(`SELECT .+ FROM "service_providers" WHERE .+"service_type".+"location".+ILIKE.+ ORDER BY "rating" DESC`).
			WillReturnRows(rows)

		providers, err := adapter.List(context.Background(), repositories.ProviderFilter{
			ServiceType: "nurse",
			Location:    "Pune",
		})

		require.NoError(t, err)
		require.Len(t, providers, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProviderAdapter_UpdateRating(t *testing.T) {
	t.Run("writes the derived rating fields", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewProviderAdapter(client)

		mock.ExpectExec(`UPDATE "service_providers" SET .+"rating".+"total_reviews".+ WHERE`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := adapter.UpdateRating(context.Background(), 7, 4.3, 13)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a missing provider to a not found error", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewProviderAdapter(client)

		mock.ExpectExec(`UPDATE "service_providers" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := adapter.UpdateRating(context.Background(), 99, 4.3, 13)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})
}
