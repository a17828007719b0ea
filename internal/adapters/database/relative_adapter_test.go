package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashray-care/aashray-backend/internal/adapters/database"
)

func TestRelativeAdapter_GetEdge(t *testing.T) {
	edgeColumns := []string{
		"id", "senior_citizen_id", "relative_id",
		"relationship", "can_book_services", "created_at",
	}

	t.Run("returns the link when it exists", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewRelativeAdapter(client)

		createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(edgeColumns).
			AddRow(int64(1), "senior-1", "relative-1", "son", true, createdAt)

		mock.ExpectQuery(`SELECT .+ FROM "relatives" WHERE`).WillReturnRows(rows)

		edge, err := adapter.GetEdge(context.Background(), "senior-1", "relative-1")

		require.NoError(t, err)
		require.NotNil(t, edge)
		assert.Equal(t, "senior-1", edge.SeniorCitizenID)
		assert.Equal(t, "relative-1", edge.RelativeID)
		assert.True(t, edge.CanBookServices)
	})

	t.Run("returns nil without an error for a missing link", func(t *testing.T) {
		client, mock := newMockClient(t)
		adapter := database.NewRelativeAdapter(client)

		mock.ExpectQuery(`SELECT .+ FROM "relatives" WHERE`).
			WillReturnRows(sqlmock.NewRows(edgeColumns))

		edge, err := adapter.GetEdge(context.Background(), "senior-1", "stranger")

		assert.NoError(t, err)
		assert.Nil(t, edge)
	})
}
