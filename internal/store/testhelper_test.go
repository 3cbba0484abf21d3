package store

import (
	"testing"

	"referral-guard/internal/observability"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// TestDB wraps a sqlmock-backed store
type TestDB struct {
	Store Store
	Mock  sqlmock.Sqlmock
}

// SetupTestDB creates a store whose queries are matched verbatim against expectations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err, "failed to create sqlmock")

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet(), "unmet sql expectations")
		db.Close()
	})

	return &TestDB{
		Store: Store{db: sqlx.NewDb(db, "pgx"), logger: observability.NewLogger()},
		Mock:  mock,
	}
}
