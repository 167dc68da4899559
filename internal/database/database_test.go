package database

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_CreatesTables(t *testing.T) {
	db := SetupTestDB(t)

	for _, table := range []string{"recurring_expenses", "upcoming_payments", "expenses", "daily_summaries"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestCleanupTestDB_EmptiesTables(t *testing.T) {
	db := SetupTestDB(t)

	expense := &models.Expense{
		UserID:   "user-1",
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
		Date:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(expense).Error)

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.Expense{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNew_SQLiteFile(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      t.TempDir() + "/finance.db",
		MaxConnections:  2,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}

	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate())
	assert.NoError(t, db.CreateIndexes())
	assert.NoError(t, db.HealthCheck(context.Background()))
}
