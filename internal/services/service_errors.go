// filepath: internal/services/service_errors.go
package services

import "errors"

// Standard errors returned by the service layer.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidID          = errors.New("invalid id format")
	ErrNotFound           = errors.New("not found")
)
