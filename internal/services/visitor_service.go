// filepath: internal/services/visitor_service.go
package services

import (
	"time"

	"animehub/internal/models"
	"animehub/internal/repository"
)

var _ VisitorService = (*visitorService)(nil)

// visitorService records and aggregates visit events.
type visitorService struct {
	Repo *repository.Repository

	// now is swappable for tests.
	now func() time.Time
}

// NewVisitorService creates a new VisitorService.
func NewVisitorService(repo *repository.Repository) *visitorService {
	return &visitorService{Repo: repo, now: time.Now}
}

// Track appends a timestamped visit record.
func (s *visitorService) Track() error {
	return s.Repo.InsertVisitor(s.now())
}

// Stats computes the three visitor counters with three independent count
// queries: all-time, since local midnight, and within the trailing five
// minutes ("live" is a proxy for current activity).
func (s *visitorService) Stats() (models.VisitorStats, error) {
	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	fiveMinutesAgo := now.Add(-5 * time.Minute)

	total, err := s.Repo.CountVisitors()
	if err != nil {
		return models.VisitorStats{}, err
	}
	today, err := s.Repo.CountVisitorsSince(todayStart)
	if err != nil {
		return models.VisitorStats{}, err
	}
	live, err := s.Repo.CountVisitorsSince(fiveMinutesAgo)
	if err != nil {
		return models.VisitorStats{}, err
	}

	return models.VisitorStats{Total: total, Today: today, Live: live}, nil
}
