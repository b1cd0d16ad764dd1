// filepath: internal/repository/repository_test.go
package repository

import (
	"path/filepath"
	"testing"

	"animehub/internal/config"
	"animehub/internal/shared"

	"github.com/stretchr/testify/assert"
)

// newTestRepository opens a fresh, fully migrated database in a temp dir.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	cfg := &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")}}
	repo, err := NewRepository(cfg)
	assert.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	assert.NoError(t, repo.EnsureSchemaBootstrapped())
	return repo
}

func TestEnsureSchemaBootstrapped(t *testing.T) {
	t.Run("Fresh Database", func(t *testing.T) {
		cfg := &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "fresh.db")}}
		repo, err := NewRepository(cfg)
		assert.NoError(t, err)
		defer repo.Close()

		// Fresh DB is considered outdated before bootstrap
		err = repo.ValidateSchema()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database schema is outdated")

		err = repo.EnsureSchemaBootstrapped()
		assert.NoError(t, err)

		err = repo.ValidateSchema()
		assert.NoError(t, err, "Fresh DB should be fully migrated after bootstrap")

		var tableName string
		err = repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='users'").Scan(&tableName)
		assert.NoError(t, err)
		assert.Equal(t, "users", tableName)
	})

	t.Run("Existing Database (Skip)", func(t *testing.T) {
		cfg := &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "existing.db")}}
		repo, err := NewRepository(cfg)
		assert.NoError(t, err)
		defer repo.Close()

		// Simulate an "existing" DB by manually creating the version table.
		_, err = repo.DB.Exec("CREATE TABLE goose_db_version (id INTEGER PRIMARY KEY, version_id INTEGER, is_applied BOOLEAN, tstamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP);")
		assert.NoError(t, err)

		err = repo.EnsureSchemaBootstrapped()
		assert.NoError(t, err)

		// Bootstrap must not have run migrations: the users table stays absent.
		var name string
		err = repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='users'").Scan(&name)
		assert.Error(t, err, "Bootstrap should have skipped migration")
	})
}

func TestCreateAndGetUser(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateUser(&UserCreateArgs{Username: "alice@example.com", Password: "secret", Role: "editor"})
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Username)

	user, err := repo.GetUserByUsername("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "secret", user.Password, "password is stored as given")
	assert.Equal(t, "editor", user.Role)

	// Second lookup is served from cache and returns the same record.
	again, err := repo.GetUserByUsername("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user, again)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, shared.ErrUserNotFound)

	exists, err := repo.UserExists("nobody")
	assert.NoError(t, err)
	assert.False(t, exists)
}
