package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/distripanel/panel-backend/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup holds the connection used by repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and skips the test when it
// is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(context.Background()))
	return setup
}

// TruncateAllTables removes every row written by the repositories.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"performance_metrics",
		"period_adjustments",
		"bonus_settings",
		"day_flags",
		"shift_configs",
		"employees",
	}

	for _, table := range tables {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// CreateEmployee inserts a worker and returns its id.
func (s *TestDatabaseSetup) CreateEmployee(t *testing.T, name string) string {
	t.Helper()

	var id string
	err := s.DB.QueryRow(context.Background(), `
		INSERT INTO employees (full_name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	require.NoError(t, err)
	return id
}
