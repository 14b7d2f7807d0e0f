// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/shoplist-be/internal/adapters/db"
	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// SetupTestDB creates a PostgreSQL container with the schema migrated
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_shoplist",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_shoplist",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	t.Cleanup(database.Close)

	// Empty SourcePath selects the migrations embedded in the db package.
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: dbConfig.URL(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}
	err = db.RunMigrationsWithRetry(context.Background(), migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates an in-memory Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return mock, sqlDB
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_shoplist",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret-that-is-long-enough-for-hs256",
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Lookup: config.LookupConfig{
			BaseURL:       "https://world.openfoodfacts.org",
			Timeout:       5 * time.Second,
			RatePerSecond: 10,
			CacheTTL:      24 * time.Hour,
			UserAgent:     "shoplist-test/1.0",
		},
		Scan: config.ScanConfig{
			SessionTTL:     30 * time.Minute,
			ResetCooldown:  0,
			ResolveTimeout: 5 * time.Second,
		},
		Share: config.ShareConfig{
			PublicBaseURL: "http://localhost:8080",
			TokenTTL:      7 * 24 * time.Hour,
		},
		Jobs: config.JobsConfig{
			ImportMaxSizeMB: 10,
			ExportRetention: 24 * time.Hour,
			StatusTTL:       24 * time.Hour,
			TempDir:         os.TempDir(),
		},
	}
}

// CreateTestList creates a test shopping list
func CreateTestList(overrides ...func(*domain.ShoppingList)) *domain.ShoppingList {
	list := &domain.ShoppingList{
		ID:        1,
		Name:      "Zakupy na weekend",
		CreatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(list)
	}

	return list
}

// CreateTestItem creates a test shopping item on list 1
func CreateTestItem(overrides ...func(*domain.ShoppingItem)) *domain.ShoppingItem {
	item := &domain.ShoppingItem{
		ListID:    1,
		Name:      "Mleko",
		Quantity:  1,
		Category:  "Nabiał",
		Barcode:   "5900000000017",
		CreatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// CreateTestItems creates count items spread across categories
func CreateTestItems(count int) []*domain.ShoppingItem {
	items := make([]*domain.ShoppingItem, count)

	for i := 0; i < count; i++ {
		items[i] = CreateTestItem(func(item *domain.ShoppingItem) {
			item.Name = fmt.Sprintf("Produkt %d", i+1)
			item.Category = domain.Categories[i%len(domain.Categories)]
			item.Barcode = ""
			if i%4 == 3 {
				w := decimal.NewFromFloat(0.5 * float64(i))
				item.Weight = &w
			} else {
				item.Quantity = i%3 + 1
			}
		})
	}

	return items
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables empties the shopping tables and resets their sequences
func TruncateAllTables(t *testing.T, database *db.Database) {
	t.Helper()

	err := database.Truncate(context.Background(), "shopping_items", "shopping_lists")
	require.NoError(t, err, "Failed to truncate tables")
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp("", fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	file.Close()

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}
