// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import "time"

// Document is a schemaless catalog record. Callers may send arbitrary
// fields; only the "type" field is interpreted (for listing filters). The
// generated id is exposed under the "_id" key on reads.
type Document map[string]interface{}

// ID returns the document id, if present.
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}

// Type returns the document's "type" field, if it is a string.
func (d Document) Type() string {
	t, _ := d["type"].(string)
	return t
}

// User represents an account in the users table. Passwords are stored as
// plaintext for compatibility with records provisioned by the previous
// deployment; see UserService.Authenticate.
type User struct {
	ID       int64  `json:"-"`
	Username string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}

// VisitorStats holds the three visitor counters: all-time, since local
// midnight, and within the trailing five minutes.
type VisitorStats struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
	Live  int64 `json:"live"`
}
