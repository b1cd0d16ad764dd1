// filepath: internal/repository/document_repo.go
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"animehub/internal/models"
	"animehub/internal/shared"

	"github.com/Masterminds/squirrel"
	"github.com/oklog/ulid/v2"
)

// InsertDocument stores a new document in the given collection and returns
// its generated id. The body is stored as-is; the "type" field, when it is a
// string, is denormalized into doc_type for the listing filters.
func (s *Repository) InsertDocument(collection string, doc models.Document) (string, error) {
	id := ulid.Make().String()

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	query, args, err := s.Builder.Insert("documents").
		Columns("id", "collection", "doc_type", "body", "created_at").
		Values(id, collection, doc.Type(), string(body), time.Now().Unix()).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := s.DB.Exec(query, args...); err != nil {
		return "", err
	}
	return id, nil
}

// GetDocuments lists a collection, optionally filtered by exact type string.
func (s *Repository) GetDocuments(collection, docType string) ([]models.Document, error) {
	sel := s.Builder.Select("id", "body").
		From("documents").
		Where(squirrel.Eq{"collection": collection})
	if docType != "" {
		sel = sel.Where(squirrel.Eq{"doc_type": docType})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		var id string
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		doc, err := decodeDocument(id, body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument retrieves a single document by its id.
func (s *Repository) GetDocument(collection, id string) (models.Document, error) {
	var body []byte
	query := "SELECT body FROM documents WHERE collection = ? AND id = ?"
	if err := s.DB.QueryRow(query, collection, id).Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrDocumentNotFound
		}
		return nil, err
	}
	return decodeDocument(id, body)
}

// UpdateDocument merges the given fields into the stored document body.
// The returned count is 0 both when no document matches the id and when the
// merge leaves the stored body unchanged; callers cannot distinguish the two.
func (s *Repository) UpdateDocument(collection, id string, updates models.Document) (int64, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var body []byte
	query := "SELECT body FROM documents WHERE collection = ? AND id = ?"
	if err := tx.QueryRow(query, collection, id).Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}

	current := make(models.Document)
	if err := json.Unmarshal(body, &current); err != nil {
		return 0, fmt.Errorf("failed to decode stored document: %w", err)
	}

	merged := make(models.Document, len(current)+len(updates))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}

	if reflect.DeepEqual(current, merged) {
		return 0, nil
	}

	newBody, err := json.Marshal(merged)
	if err != nil {
		return 0, fmt.Errorf("failed to encode document: %w", err)
	}
	query = "UPDATE documents SET body = ?, doc_type = ? WHERE collection = ? AND id = ?"
	if _, err := tx.Exec(query, string(newBody), merged.Type(), collection, id); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return 1, nil
}

// DeleteDocument deletes a document by its id.
func (s *Repository) DeleteDocument(collection, id string) error {
	res, err := s.DB.Exec("DELETE FROM documents WHERE collection = ? AND id = ?", collection, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shared.ErrDocumentNotFound
	}
	return nil
}
