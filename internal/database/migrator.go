package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finance-tracker/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the SQL migrations in db/migrations and optional
// seed files to a postgres database.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seed           bool
}

// NewMigrationRunner creates a new migration runner using the default paths.
func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
	}
}

// NewMigrationRunnerFromConfig takes paths and the seed switch from cfg.
func NewMigrationRunnerFromConfig(db *sql.DB, cfg *config.DatabaseConfig) *MigrationRunner {
	runner := NewMigrationRunner(db)
	if cfg.MigrationsPath != "" {
		runner.migrationsPath = cfg.MigrationsPath
	}
	if cfg.SeedsPath != "" {
		runner.seedsPath = cfg.SeedsPath
	}
	runner.seed = cfg.SeedDatabase
	return runner
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			return nil
		}

		slog.Info("database not ready",
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", maxRetries),
			slog.String("error", err.Error()),
		)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", absPath), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations. It reports false when the
// migrations directory is missing and nothing was applied.
func (mr *MigrationRunner) RunMigrations() (bool, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		slog.Info("migrations directory not found, skipping", slog.String("path", mr.migrationsPath))
		return false, nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return false, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return false, fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("database is in dirty state, forcing version", slog.Uint64("version", uint64(version)))
		if err := m.Force(int(version)); err != nil {
			return false, fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return false, fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("no new migrations to apply", slog.Uint64("version", uint64(version)))
		return true, nil
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return false, fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("applied migrations", slog.Uint64("version", uint64(newVersion)))

	return true, nil
}

// LoadSeeds executes every *.sql file in the seeds directory. A failing file
// is logged and skipped.
func (mr *MigrationRunner) LoadSeeds() error {
	if !mr.seed {
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		slog.Info("seeds directory not found, skipping", slog.String("path", mr.seedsPath))
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			slog.Warn("failed to execute seed file", slog.String("file", filepath.Base(file)), slog.String("error", err.Error()))
			continue
		}

		slog.Info("executed seed file", slog.String("file", filepath.Base(file)))
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// RunMigrationsIfEnabled runs the SQL migrations when AutoMigrate is set and
// reports whether the schema is now managed by them.
func RunMigrationsIfEnabled(db *sql.DB, cfg *config.DatabaseConfig) (bool, error) {
	if !cfg.AutoMigrate {
		return false, nil
	}

	runner := NewMigrationRunnerFromConfig(db, cfg)

	if err := runner.WaitForDatabase(); err != nil {
		return false, fmt.Errorf("database readiness check failed: %w", err)
	}

	migrated, err := runner.RunMigrations()
	if err != nil {
		return false, fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		slog.Warn("seed data loading failed", slog.String("error", err.Error()))
	}

	if migrated {
		if version, dirty, err := runner.GetMigrationStatus(); err == nil {
			slog.Info("migration status", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		}
	}

	return migrated, nil
}
