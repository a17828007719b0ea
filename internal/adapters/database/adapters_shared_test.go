package database_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/aashray-care/aashray-backend/internal/infrastructure/clients/postgres"
)

// newMockClient returns a postgres client backed by sqlmock. Queries are
// matched as regular expressions against the generated SQL.
func newMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewClientFromDB(db), mock
}
