// filepath: internal/api/handlers/auth_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"animehub/internal/models"
	"animehub/internal/services"
)

func TestLogin_Success(t *testing.T) {
	mockUserSvc := new(MockUserService)
	mockUserSvc.On("Authenticate", "admin@example.com", "secret").Return(&models.User{
		Username: "admin@example.com",
		Password: "secret",
		Role:     "admin",
	}, nil)
	h := NewHandlers(nil, mockUserSvc, nil, nil, nil, newQuietAuditor(), nil)

	body := `{"email":"admin@example.com","password":"secret"}`
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)
	// The password must never leak into the response.
	assert.NotContains(t, rr.Body.String(), "secret")
	mockUserSvc.AssertExpectations(t)
}

func TestLogin_MissingFields(t *testing.T) {
	h := NewHandlers(nil, new(MockUserService), nil, nil, nil, newQuietAuditor(), nil)

	for _, body := range []string{
		`{}`,
		`{"email":"admin@example.com"}`,
		`{"password":"secret"}`,
	} {
		req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "body: %s", body)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Email and password are required", resp.Error)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	mockUserSvc := new(MockUserService)
	// Unknown user and wrong password come back as the same error, so the
	// endpoint cannot reveal which one happened.
	mockUserSvc.On("Authenticate", "ghost@example.com", "nope").Return(nil, services.ErrInvalidCredentials)
	mockUserSvc.On("Authenticate", "admin@example.com", "wrong").Return(nil, services.ErrInvalidCredentials)
	h := NewHandlers(nil, mockUserSvc, nil, nil, nil, newQuietAuditor(), nil)

	for _, body := range []string{
		`{"email":"ghost@example.com","password":"nope"}`,
		`{"email":"admin@example.com","password":"wrong"}`,
	} {
		req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid email or password", resp.Error)
	}
}

func TestLogin_InvalidBody(t *testing.T) {
	h := NewHandlers(nil, new(MockUserService), nil, nil, nil, newQuietAuditor(), nil)

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
