// filepath: internal/api/handlers/main.go
package handlers

import (
	"animehub/internal/config"
	"animehub/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
// Everything reaches the database through these service interfaces; there is
// no module-level state.
type Handlers struct {
	Info     services.InfoService
	User     services.UserService
	Media    services.MediaService
	Schedule services.ScheduleService
	Visitor  services.VisitorService
	Auditor  services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	user services.UserService,
	media services.MediaService,
	schedule services.ScheduleService,
	visitor services.VisitorService,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:     info,
		User:     user,
		Media:    media,
		Schedule: schedule,
		Visitor:  visitor,
		Auditor:  auditor,
		Cfg:      cfg,
	}
}
