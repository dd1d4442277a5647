package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func getTestDB(t *testing.T) (*sql.DB, func()) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)

	cleanup := func() {
		_ = db.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return db, cleanup
}

func getMigrationsPath(t *testing.T) string {
	projectRoot, err := filepath.Abs("../..")
	require.NoError(t, err)
	return filepath.Join(projectRoot, "migrations")
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`, name).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func TestRunMigrations(t *testing.T) {
	db, cleanup := getTestDB(t)
	defer cleanup()

	err := Run(db, getMigrationsPath(t))
	require.NoError(t, err)

	for _, table := range []string{
		"users", "user_subs", "measurement_units", "ingredients",
		"tags", "recipes", "recipe_ingredients", "recipe_tags",
	} {
		require.True(t, tableExists(t, db, table), "table %s should exist", table)
	}

	var unitsCount int
	err = db.QueryRow("SELECT COUNT(*) FROM measurement_units").Scan(&unitsCount)
	require.NoError(t, err)
	require.Greater(t, unitsCount, 0, "measurement units should be seeded")

	version, dirty, err := Version(db, getMigrationsPath(t))
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(2), version)
}

func TestMigrationIdempotency(t *testing.T) {
	db, cleanup := getTestDB(t)
	defer cleanup()

	path := getMigrationsPath(t)
	require.NoError(t, Run(db, path))
	require.NoError(t, Run(db, path), "running migrations twice should not fail")
}

func TestSubscriptionPairIsUnique(t *testing.T) {
	db, cleanup := getTestDB(t)
	defer cleanup()

	require.NoError(t, Run(db, getMigrationsPath(t)))

	_, err := db.Exec(`INSERT INTO users (id, username, email, password_hash) VALUES
		(1, 'alice', 'alice@example.com', 'x'), (2, 'bob', 'bob@example.com', 'x')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO user_subs (user_id, sub_id) VALUES (1, 2)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO user_subs (user_id, sub_id) VALUES (1, 2)`)
	require.Error(t, err, "duplicate pair must violate unique constraint")
	_, err = db.Exec(`INSERT INTO user_subs (user_id, sub_id) VALUES (1, 1)`)
	require.Error(t, err, "self subscription must violate check constraint")
}
