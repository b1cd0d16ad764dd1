// filepath: internal/api/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"animehub/internal/logging"
	"animehub/internal/services"
)

// AddUserRequest is the DTO for the user administration endpoint. Unlike
// login, the identifier travels under the "user" key here; both keys are
// part of the frontend's wire contract.
type AddUserRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// @Summary Add a user
// @Description Create a user account with an identifier, password and role.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body AddUserRequest true "User to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /add-user [post]
func (h *Handlers) AddUser(w http.ResponseWriter, r *http.Request) {
	var req AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.User == "" || req.Password == "" || req.Role == "" {
		respondWithError(w, http.StatusBadRequest, "All fields are required!")
		return
	}

	if err := h.User.CreateUser(req.User, req.Password, req.Role); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			respondWithError(w, http.StatusBadRequest, "User already exists!")
			return
		}
		logging.Log.Errorf("AddUser: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Auditor.Log(r.Context(), "user.add", r.RemoteAddr, "users:"+req.User, map[string]interface{}{
		"role": req.Role,
	})

	respondWithMessage(w, http.StatusCreated, "User added successfully!")
}
