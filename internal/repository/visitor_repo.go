// filepath: internal/repository/visitor_repo.go
package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
)

// InsertVisitor appends a visit record. There is no deduplication and no
// per-visitor identity; every call adds a row.
func (s *Repository) InsertVisitor(t time.Time) error {
	_, err := s.DB.Exec("INSERT INTO visitors (visited_at) VALUES (?)", t.Unix())
	return err
}

// CountVisitors returns the all-time number of visit records.
func (s *Repository) CountVisitors() (int64, error) {
	return s.countVisitors(s.Builder.Select("COUNT(*)").From("visitors"))
}

// CountVisitorsSince counts visit records at or after the given instant.
func (s *Repository) CountVisitorsSince(since time.Time) (int64, error) {
	return s.countVisitors(s.Builder.Select("COUNT(*)").
		From("visitors").
		Where(squirrel.GtOrEq{"visited_at": since.Unix()}))
}

func (s *Repository) countVisitors(sel squirrel.SelectBuilder) (int64, error) {
	query, args, err := sel.ToSql()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := s.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
