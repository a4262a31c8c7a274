package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flexquotes/backend/internal/database/config"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

// unreachableConfig points at a port nothing listens on, so connection
// attempts fail fast instead of hanging.
func unreachableConfig() config.Config {
	return config.Config{
		Host:     "127.0.0.1",
		User:     "postgres",
		Password: "hunter2",
		DBName:   "flexquotes",
		Port:     "1",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

func TestNewWithConfig_UnreachableHost(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "1")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "1ms")

	db, err := NewWithConfig(unreachableConfig())
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestNewWithConfig_SanitizesPassword(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "1")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "1ms")

	_, err := NewWithConfig(unreachableConfig())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "hunter2")
}

func TestNewWithConfig_RetriesExhausted(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "2")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "1ms")
	t.Setenv("DB_RETRY_MAX_DELAY", "2ms")

	start := time.Now()
	_, err := NewWithConfig(unreachableConfig())
	require.Error(t, err)
	// Two fast attempts should still finish quickly.
	assert.Less(t, time.Since(start), 30*time.Second)
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy connection", func(t *testing.T) {
		db := openSQLite(t)
		assert.NoError(t, HealthCheck(context.Background(), db))
	})

	t.Run("nil database", func(t *testing.T) {
		err := HealthCheck(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database connection is nil")
	})

	t.Run("closed connection", func(t *testing.T) {
		db := openSQLite(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		err = HealthCheck(context.Background(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database ping failed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		db := openSQLite(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, HealthCheck(ctx, db))
	})
}

func TestClose(t *testing.T) {
	t.Run("closes open connection", func(t *testing.T) {
		db := openSQLite(t)
		require.NoError(t, Close(db))

		// Connection is gone afterwards.
		assert.Error(t, HealthCheck(context.Background(), db))
	})

	t.Run("nil database is a no-op", func(t *testing.T) {
		assert.NoError(t, Close(nil))
	})

	t.Run("close is idempotent", func(t *testing.T) {
		db := openSQLite(t)
		require.NoError(t, Close(db))
		assert.NoError(t, Close(db))
	})
}

func TestGetStats(t *testing.T) {
	t.Run("returns pool stats", func(t *testing.T) {
		db := openSQLite(t)
		defer func() { _ = Close(db) }()

		stats, err := GetStats(db)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.GreaterOrEqual(t, stats.OpenConnections, 0)
	})

	t.Run("nil database", func(t *testing.T) {
		stats, err := GetStats(nil)
		require.Error(t, err)
		assert.Nil(t, stats)
	})
}
