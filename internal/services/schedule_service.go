// filepath: internal/services/schedule_service.go
package services

import (
	"animehub/internal/models"
	"animehub/internal/repository"
)

var _ ScheduleService = (*scheduleService)(nil)

// scheduleService handles broadcast schedule entries. Schedules are created
// and listed only; this service never updates or deletes them.
type scheduleService struct {
	Repo *repository.Repository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(repo *repository.Repository) *scheduleService {
	return &scheduleService{Repo: repo}
}

// requiredScheduleFields must be present and non-empty on creation. Anything
// else in the document is stored untouched.
var requiredScheduleFields = []string{"day", "time", "title", "type"}

// Create validates the required fields and inserts the schedule document.
func (s *scheduleService) Create(doc models.Document) (string, error) {
	for _, field := range requiredScheduleFields {
		v, ok := doc[field]
		if !ok || v == nil {
			return "", ErrValidation
		}
		if str, isString := v.(string); isString && str == "" {
			return "", ErrValidation
		}
	}

	delete(doc, "_id")
	return s.Repo.InsertDocument(repository.CollectionSchedules, doc)
}

// List returns all schedule documents, unfiltered and unsorted.
func (s *scheduleService) List() ([]models.Document, error) {
	return s.Repo.GetDocuments(repository.CollectionSchedules, "")
}
