package store

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests.
// When neither TEST_DB_HOST nor Docker is available the PostgreSQL suite is skipped.
func TestMain(m *testing.M) {
	flag.Parse()
	ctx := context.Background()

	dsn, err := testDSN(ctx)
	if err != nil {
		fmt.Printf("PostgreSQL unavailable, skipping pg tests: %v\n", err)
		os.Exit(m.Run())
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err == nil {
		err = Migrate(testDB)
	}
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

func testDSN(ctx context.Context) (string, error) {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		port := envOr("TEST_DB_PORT", "5432")
		user := envOr("TEST_DB_USER", "postgres")
		password := envOr("TEST_DB_PASSWORD", "postgres")
		name := envOr("TEST_DB_NAME", "test_db")

		fmt.Printf("Using external database: %s:%s/%s\n", host, port, name)
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, name), nil
	}

	if testing.Short() {
		return "", fmt.Errorf("short mode")
	}

	err := recoverStart(func() error {
		var err error
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		return err
	})
	if err != nil {
		pgContainer = nil
		return "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminateContainer(ctx)
		return "", fmt.Errorf("failed to get connection string: %w", err)
	}

	fmt.Printf("Started PostgreSQL container\n")
	return dsn, nil
}

// recoverStart turns a panic during container startup into an error.
// testcontainers panics when no Docker host can be found.
func recoverStart(start func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("container startup panicked: %v", r)
		}
	}()
	return start()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func terminateContainer(ctx context.Context) {
	if pgContainer == nil {
		return
	}
	if err := pgContainer.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}

// initPGTestDB empties the tables so each test starts from a fresh deployment
func initPGTestDB(t *testing.T) Store {
	require.NoError(t, testDB.Exec("TRUNCATE TABLE tokens, contract_state").Error)
	return NewPGStore(testDB)
}

func TestRecoverStart(t *testing.T) {
	err := recoverStart(func() error {
		panic("rootless Docker not found")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rootless Docker not found")

	assert.NoError(t, recoverStart(func() error { return nil }))

	failure := errors.New("pull failed")
	assert.ErrorIs(t, recoverStart(func() error { return failure }), failure)
}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}

	RunStoreTests(t, initPGTestDB)
}
