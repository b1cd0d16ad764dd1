// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"animehub/internal/config"
	"animehub/internal/db/migrations"
	"animehub/internal/logging"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

// Collection names within the documents table.
const (
	CollectionMedia     = "animes"
	CollectionSchedules = "schedules"
)

// Repository holds the shared database handles. One instance is constructed
// at startup and reused concurrently by all request handlers; the sql driver
// owns pooling and connection safety.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

var gooseSetup sync.Once

func configureGoose() {
	gooseSetup.Do(func() {
		goose.SetBaseFS(migrations.FS)
		goose.SetLogger(logging.Log)
		if err := goose.SetDialect("sqlite3"); err != nil {
			logging.Log.Fatalf("Failed to set goose dialect: %v", err)
		}
	})
}

// NewRepository opens the database and prepares the shared handles.
func NewRepository(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	configureGoose()

	return &Repository{
		DB:      db,
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// EnsureSchemaBootstrapped migrates a fresh database to the latest schema.
// Databases that already carry a goose version table are left alone so the
// manual migrate commands stay in control of existing deployments.
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	logging.Log.Info("Fresh database detected, applying migrations...")
	return goose.Up(s.DB, ".")
}

// ValidateSchema verifies the database is at the latest migration version.
func (s *Repository) ValidateSchema() error {
	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	migs, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	last, err := migs.Last()
	if err != nil {
		return fmt.Errorf("failed to determine latest migration: %w", err)
	}

	if current < last.Version {
		return fmt.Errorf("database schema is outdated: at version %d, latest is %d (run 'animehub migrate up')", current, last.Version)
	}
	return nil
}

// MigrateUp migrates the database to the most recent version.
func (s *Repository) MigrateUp() error {
	return goose.Up(s.DB, ".")
}

// MigrateDown rolls the database back by one version.
func (s *Repository) MigrateDown() error {
	return goose.Down(s.DB, ".")
}

// MigrateStatus prints the migration status for the current database.
func (s *Repository) MigrateStatus() error {
	return goose.Status(s.DB, ".")
}
