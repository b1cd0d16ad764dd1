// filepath: internal/services/services_test.go
package services

import (
	"path/filepath"
	"testing"

	"animehub/internal/config"
	"animehub/internal/repository"

	"github.com/stretchr/testify/assert"
)

// newTestRepo opens a fresh, fully migrated database in a temp dir.
func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	cfg := &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")}}
	repo, err := repository.NewRepository(cfg)
	assert.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	assert.NoError(t, repo.EnsureSchemaBootstrapped())
	return repo
}
