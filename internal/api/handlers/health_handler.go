// filepath: internal/api/handlers/health_handler.go
package handlers

import (
	"fmt"
	"net/http"
)

// Root is the legacy liveness check served at "/". The exact body is part of
// the public contract.
func Root(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Server is working fine!")
}

// HealthCheck is a simple public endpoint to confirm the server is running.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}
