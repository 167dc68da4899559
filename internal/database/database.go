package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector(cfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.RecurringExpense{},
		&models.UpcomingPayment{},
		&models.Expense{},
		&models.DailySummary{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the underlying connection pool.
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the secondary indexes the list queries rely on. Partial
// indexes only exist on postgres.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_upcoming_payments_user_due ON upcoming_payments(user_id, due_date)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_user_book_date ON expenses(user_id, expense_book_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_daily_summaries_user_date ON daily_summaries(user_id, date)",
	}
	if db.config == nil || db.config.Driver != config.DriverSQLite {
		queries = append(queries,
			"CREATE INDEX IF NOT EXISTS idx_recurring_expenses_active_next ON recurring_expenses(user_id, next_occurrence) WHERE is_active",
			"CREATE INDEX IF NOT EXISTS idx_expenses_recurring ON expenses(recurring_expense_id) WHERE recurring_expense_id IS NOT NULL",
		)
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", slog.String("query", query), slog.String("error", err.Error()))
		}
	}

	return nil
}

// Initialize opens the database, applies SQL migrations when enabled and
// falls back to gorm AutoMigrate otherwise.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrated := false
	if cfg.Database.Driver == config.DriverPostgres {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		migrated, err = RunMigrationsIfEnabled(sqlDB, &cfg.Database)
		if err != nil {
			slog.Warn("migration runner failed, falling back to gorm AutoMigrate", slog.String("error", err.Error()))
			migrated = false
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", slog.String("error", err.Error()))
	}

	slog.Info("database initialized", slog.String("driver", cfg.Database.Driver))

	return db, nil
}
