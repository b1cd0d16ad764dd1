// filepath: internal/services/user_service_test.go
package services

import (
	"testing"

	"animehub/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	svc := NewUserService(newTestRepo(t))
	assert.NoError(t, svc.CreateUser("alice@example.com", "secret", "admin"))

	t.Run("Valid Credentials", func(t *testing.T) {
		user, err := svc.Authenticate("alice@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Username)
		assert.Equal(t, "admin", user.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := svc.Authenticate("alice@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown User", func(t *testing.T) {
		// Same error as a wrong password, so callers cannot probe for accounts.
		_, err := svc.Authenticate("bob@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc := NewUserService(newTestRepo(t))
	assert.NoError(t, svc.CreateUser("alice@example.com", "secret", "admin"))

	err := svc.CreateUser("alice@example.com", "other", "viewer")
	assert.ErrorIs(t, err, ErrUserExists)

	// The existing record is untouched.
	user, err := svc.Authenticate("alice@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
}

func TestInitializeAdminUser(t *testing.T) {
	svc := NewUserService(newTestRepo(t))
	cfg := &config.Config{Admin: config.AdminConfig{User: "admin@animehub.local", Password: "changeme", Role: "admin"}}

	assert.NoError(t, svc.InitializeAdminUser(cfg))

	user, err := svc.Authenticate("admin@animehub.local", "changeme")
	assert.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	// Second run is a no-op, even with a different configured password.
	cfg.Admin.Password = "other"
	assert.NoError(t, svc.InitializeAdminUser(cfg))
	_, err = svc.Authenticate("admin@animehub.local", "changeme")
	assert.NoError(t, err)
}

func TestInitializeAdminUser_Unconfigured(t *testing.T) {
	svc := NewUserService(newTestRepo(t))
	assert.NoError(t, svc.InitializeAdminUser(&config.Config{}))
}
