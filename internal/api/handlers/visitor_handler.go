// filepath: internal/api/handlers/visitor_handler.go
package handlers

import (
	"net/http"

	"animehub/internal/logging"
)

// @Summary Track a visit
// @Description Record one visit at the current server time.
// @Tags Visitors
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /track-visitor [post]
func (h *Handlers) TrackVisitor(w http.ResponseWriter, r *http.Request) {
	if err := h.Visitor.Track(); err != nil {
		logging.Log.Errorf("TrackVisitor: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithMessage(w, http.StatusOK, "Visitor Tracked")
}

// @Summary Visitor statistics
// @Description Report the all-time, today and live (last five minutes) visit counts.
// @Tags Visitors
// @Produce json
// @Success 200 {object} models.VisitorStats
// @Failure 500 {object} ErrorResponse
// @Router /visitor-view [get]
func (h *Handlers) VisitorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Visitor.Stats()
	if err != nil {
		logging.Log.Errorf("VisitorStats: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
