// filepath: internal/api/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"animehub/internal/logging"
	"animehub/internal/services"
)

// LoginRequest is the DTO for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the user payload echoed back on a successful login.
type LoginUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is the success payload of the login endpoint.
type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

// @Summary Log in
// @Description Check credentials and echo the identifier and role. No token or session is issued.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.User.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// One message for both unknown user and wrong password.
			respondWithError(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		logging.Log.Errorf("Login: %v", err)
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		User:    LoginUser{Email: user.Username, Role: user.Role},
	})
}
