// filepath: internal/repository/user_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"animehub/internal/logging"
	"animehub/internal/models"
	"animehub/internal/shared"
)

// UserCreateArgs is a struct used for creating users in the database layer.
type UserCreateArgs struct {
	Username string
	Password string
	Role     string
}

// GetUserByUsername retrieves a user by their username, using a cache for performance.
func (s *Repository) GetUserByUsername(username string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_name_%s", username)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByUsername: CACHE MISS for '%s'. Querying DB.", username)
	query := "SELECT id, username, password, role FROM users WHERE username = ?"
	row := s.DB.QueryRow(query, username)

	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrUserNotFound
		}
		return nil, err
	}

	s.Cache.Set(cacheKey, &user, 5*time.Minute)

	return &user, nil
}

// UserExists checks if a user with the given username exists.
func (s *Repository) UserExists(username string) (bool, error) {
	_, err := s.GetUserByUsername(username)
	if err != nil {
		if err == shared.ErrUserNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateUser creates a new user in the database. The password is stored as
// given; this service performs no hashing so that logins stay byte-compatible
// with records provisioned by the previous deployment. Uniqueness of the
// username is the caller's check-then-insert responsibility.
func (s *Repository) CreateUser(args *UserCreateArgs) (*models.User, error) {
	query := "INSERT INTO users (username, password, role) VALUES (?, ?, ?)"
	result, err := s.DB.Exec(query, args.Username, args.Password, args.Role)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateUser: User '%s' created with ID %d", args.Username, id)

	user := &models.User{
		ID:       id,
		Username: args.Username,
		Password: args.Password,
		Role:     args.Role,
	}
	s.Cache.Set(fmt.Sprintf("user_by_name_%s", args.Username), user, 5*time.Minute)

	return user, nil
}
