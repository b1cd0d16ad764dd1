// filepath: internal/api/handlers/schedule_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"animehub/internal/logging"
	"animehub/internal/models"
	"animehub/internal/services"
)

// @Summary Add a schedule entry
// @Description Insert a broadcast schedule entry. Requires day, time, title and type.
// @Tags Schedules
// @Accept json
// @Produce json
// @Param schedule body models.Document true "Schedule entry"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /schedules [post]
func (h *Handlers) AddSchedule(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Schedule.Create(doc)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "All fields are required!")
			return
		}
		logging.Log.Errorf("AddSchedule: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Auditor.Log(r.Context(), "schedule.create", r.RemoteAddr, "schedules:"+id, map[string]interface{}{
		"day": doc["day"],
	})

	respondWithJSON(w, http.StatusCreated, CreatedResponse{Message: "Schedule added!", ID: id})
}

// @Summary List schedule entries
// @Description List all broadcast schedule entries.
// @Tags Schedules
// @Produce json
// @Success 200 {array} models.Document
// @Failure 500 {object} ErrorResponse
// @Router /schedules [get]
func (h *Handlers) ListSchedules(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Schedule.List()
	if err != nil {
		logging.Log.Errorf("ListSchedules: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, docs)
}
