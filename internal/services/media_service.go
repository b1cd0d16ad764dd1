// filepath: internal/services/media_service.go
package services

import (
	"errors"

	"animehub/internal/models"
	"animehub/internal/repository"
	"animehub/internal/shared"

	"github.com/oklog/ulid/v2"
)

var _ MediaService = (*mediaService)(nil)

// mediaService handles the schemaless media catalog. Documents are accepted
// as-is; only the "type" field is interpreted, for the listing filters.
type mediaService struct {
	Repo *repository.Repository
}

// NewMediaService creates a new MediaService.
func NewMediaService(repo *repository.Repository) *mediaService {
	return &mediaService{Repo: repo}
}

// Create inserts an arbitrary document and returns its generated id.
func (s *mediaService) Create(doc models.Document) (string, error) {
	// A client-sent "_id" never reaches the stored body.
	delete(doc, "_id")
	return s.Repo.InsertDocument(repository.CollectionMedia, doc)
}

// List returns all media documents, or only those whose "type" field exactly
// equals typeFilter when it is non-empty.
func (s *mediaService) List(typeFilter string) ([]models.Document, error) {
	return s.Repo.GetDocuments(repository.CollectionMedia, typeFilter)
}

// Get retrieves a single document. A malformed id maps to ErrNotFound, like
// an id that matches nothing.
func (s *mediaService) Get(id string) (models.Document, error) {
	if _, err := ulid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	doc, err := s.Repo.GetDocument(repository.CollectionMedia, id)
	if err != nil {
		if errors.Is(err, shared.ErrDocumentNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Update merges the given fields into the stored document and reports how
// many documents changed. Zero covers both "not found" and "no-op payload";
// the two cases are not distinguished.
func (s *mediaService) Update(id string, updates models.Document) (int64, error) {
	if _, err := ulid.Parse(id); err != nil {
		return 0, ErrInvalidID
	}
	delete(updates, "_id")
	return s.Repo.UpdateDocument(repository.CollectionMedia, id, updates)
}

// Delete removes a document by id.
func (s *mediaService) Delete(id string) error {
	if _, err := ulid.Parse(id); err != nil {
		return ErrInvalidID
	}
	err := s.Repo.DeleteDocument(repository.CollectionMedia, id)
	if errors.Is(err, shared.ErrDocumentNotFound) {
		return ErrNotFound
	}
	return err
}
