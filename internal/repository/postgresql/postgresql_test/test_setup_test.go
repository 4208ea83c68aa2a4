package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/caibang/attendance-backend-go/internal/pkg/database"
)

const migrationsDir = "../../../../migrations"

// TestDatabaseSetup holds the connection used by repository integration tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies pending migrations.
func NewTestDatabase(ctx context.Context, dsn string) (*TestDatabaseSetup, error) {
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if _, err := db.Migrate(ctx, os.DirFS(migrationsDir)); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables empties every table between tests.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	_, err := t.DB.Exec(ctx, "TRUNCATE TABLE attendances, daily_reports, members, users CASCADE")
	return err
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
