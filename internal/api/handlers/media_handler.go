// filepath: internal/api/handlers/media_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"animehub/internal/logging"
	"animehub/internal/models"
	"animehub/internal/services"
)

// @Summary Add a media entry
// @Description Insert a catalog entry. The body is stored as-is; no fields are required.
// @Tags Media
// @Accept json
// @Produce json
// @Param anime body models.Document true "Entry to add"
// @Success 200 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /anime [post]
func (h *Handlers) AddMedia(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Media.Create(doc)
	if err != nil {
		logging.Log.Errorf("AddMedia: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Auditor.Log(r.Context(), "media.create", r.RemoteAddr, "animes:"+id, map[string]interface{}{
		"type": doc.Type(),
	})

	respondWithJSON(w, http.StatusOK, CreatedResponse{Message: "Anime added!", ID: id})
}

// ListMedia returns a handler that lists catalog entries, optionally filtered
// by an exact "type" value. The router binds one instance per literal path.
//
// @Summary List media entries
// @Description List all catalog entries, or only those of one type.
// @Tags Media
// @Produce json
// @Success 200 {array} models.Document
// @Failure 500 {object} ErrorResponse
// @Router /all-anime [get]
func (h *Handlers) ListMedia(typeFilter string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := h.Media.List(typeFilter)
		if err != nil {
			logging.Log.Errorf("ListMedia: %v", err)
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, docs)
	}
}

// @Summary Get a media entry
// @Description Fetch a single catalog entry by id.
// @Tags Media
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} models.Document
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /anime/{id} [get]
func (h *Handlers) GetMedia(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	doc, err := h.Media.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Anime not found!")
			return
		}
		logging.Log.Errorf("GetMedia: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, doc)
}

// @Summary Update a media entry
// @Description Merge the request body into an existing entry. Unknown ids and no-op payloads both report zero modifications.
// @Tags Media
// @Accept json
// @Produce json
// @Param id path string true "Entry id"
// @Param anime body models.Document true "Fields to merge"
// @Success 200 {object} UpdatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /anime/{id} [patch]
func (h *Handlers) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var updates models.Document
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	modified, err := h.Media.Update(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			respondWithError(w, http.StatusBadRequest, "Invalid id format")
			return
		}
		logging.Log.Errorf("UpdateMedia: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if modified == 0 {
		respondWithMessage(w, http.StatusNotFound, "No anime found or no changes made!")
		return
	}

	h.Auditor.Log(r.Context(), "media.update", r.RemoteAddr, "animes:"+id, map[string]interface{}{
		"modified": modified,
	})

	respondWithJSON(w, http.StatusOK, UpdatedResponse{Message: "Anime updated successfully!", Modified: modified})
}

// @Summary Delete a media entry
// @Description Remove a catalog entry by id.
// @Tags Media
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /anime/{id} [delete]
func (h *Handlers) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Media.Delete(id); err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			respondWithError(w, http.StatusBadRequest, "Invalid id format")
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			respondWithMessage(w, http.StatusNotFound, "Anime not found!")
			return
		}
		logging.Log.Errorf("DeleteMedia: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Auditor.Log(r.Context(), "media.delete", r.RemoteAddr, "animes:"+id, nil)

	respondWithMessage(w, http.StatusOK, "Anime deleted successfully!")
}
