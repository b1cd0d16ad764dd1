// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"animehub/internal/config"
	"animehub/internal/models"
)

// Auditor defines the interface for recording mutating events.
type Auditor interface {
	// Log records an event.
	// action: what happened (e.g., "media.create", "user.add")
	// actor: who did it (remote address; this service has no sessions)
	// resource: what was affected (e.g., "animes:01H...", "schedules")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// UserService defines the interface for the user service.
type UserService interface {
	Authenticate(email, password string) (*models.User, error)
	CreateUser(username, password, role string) error
	InitializeAdminUser(cfg *config.Config) error
}

// MediaService defines the interface for the media catalog service.
type MediaService interface {
	Create(doc models.Document) (string, error)
	List(typeFilter string) ([]models.Document, error)
	Get(id string) (models.Document, error)
	Update(id string, updates models.Document) (int64, error)
	Delete(id string) error
}

// ScheduleService defines the interface for the broadcast schedule service.
type ScheduleService interface {
	Create(doc models.Document) (string, error)
	List() ([]models.Document, error)
}

// VisitorService defines the interface for the visitor analytics service.
type VisitorService interface {
	Track() error
	Stats() (models.VisitorStats, error)
}
