// filepath: internal/api/router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"animehub/internal/api/handlers"
)

// SetupRouter configures the main router. Every endpoint is public; the
// login endpoint checks credentials but issues no token, so nothing here
// can be gated on one. The returned handler wraps the router in the CORS
// middleware so preflight requests are answered even for unmatched methods.
func SetupRouter(h *handlers.Handlers) http.Handler {
	r := mux.NewRouter()

	// Liveness and service info
	r.HandleFunc("/", handlers.Root).Methods("GET")
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Accounts
	r.HandleFunc("/api/login", h.Login).Methods("POST")
	r.HandleFunc("/api/add-user", h.AddUser).Methods("POST")

	addMediaRoutes(r, h)
	addScheduleRoutes(r, h)
	addVisitorRoutes(r, h)

	return corsMiddleware(r)
}

// addMediaRoutes configures routes for the media catalog.
func addMediaRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/api/anime", h.AddMedia).Methods("POST")
	r.HandleFunc("/api/all-anime", h.ListMedia("")).Methods("GET")

	// One listing handler parameterized by type, bound to the literal
	// paths the frontend calls. The filter values are exact matches
	// against each document's "type" field.
	r.HandleFunc("/api/anime", h.ListMedia("anime")).Methods("GET")
	r.HandleFunc("/api/movie", h.ListMedia("movie")).Methods("GET")
	r.HandleFunc("/api/series", h.ListMedia("series")).Methods("GET")
	r.HandleFunc("/api/tv-show", h.ListMedia("tv-show")).Methods("GET")
	r.HandleFunc("/api/animation&cartoon", h.ListMedia("animation & cartoon")).Methods("GET")

	r.HandleFunc("/api/anime/{id}", h.GetMedia).Methods("GET")
	r.HandleFunc("/api/anime/{id}", h.UpdateMedia).Methods("PATCH")
	r.HandleFunc("/api/anime/{id}", h.DeleteMedia).Methods("DELETE")
}

// addScheduleRoutes configures routes for broadcast schedules.
func addScheduleRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/api/schedules", h.AddSchedule).Methods("POST")
	r.HandleFunc("/api/schedules", h.ListSchedules).Methods("GET")
}

// addVisitorRoutes configures routes for visitor analytics.
func addVisitorRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/api/track-visitor", h.TrackVisitor).Methods("POST")
	r.HandleFunc("/api/visitor-view", h.VisitorStats).Methods("GET")
}

// corsMiddleware allows browser frontends on any origin to call the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
