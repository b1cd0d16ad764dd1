// filepath: internal/api/handlers/user_handler_test.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"animehub/internal/services"
)

func TestAddUser_Success(t *testing.T) {
	mockUserSvc := new(MockUserService)
	mockUserSvc.On("CreateUser", "new@example.com", "pass123", "editor").Return(nil)
	auditor := newQuietAuditor()
	h := NewHandlers(nil, mockUserSvc, nil, nil, nil, auditor, nil)

	body := `{"user":"new@example.com","password":"pass123","role":"editor"}`
	req := httptest.NewRequest("POST", "/api/add-user", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.AddUser(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp MessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "User added successfully!", resp.Message)
	mockUserSvc.AssertExpectations(t)
	auditor.AssertCalled(t, "Log", req.Context(), "user.add", req.RemoteAddr, "users:new@example.com", map[string]interface{}{"role": "editor"})
}

func TestAddUser_MissingFields(t *testing.T) {
	h := NewHandlers(nil, new(MockUserService), nil, nil, nil, newQuietAuditor(), nil)

	for _, body := range []string{
		`{}`,
		`{"user":"a@b.c","password":"x"}`,
		`{"user":"a@b.c","role":"admin"}`,
		`{"password":"x","role":"admin"}`,
		// The identifier key is "user" on this endpoint; the login-style
		// "email" key must not be honored.
		`{"email":"a@b.c","password":"x","role":"admin"}`,
	} {
		req := httptest.NewRequest("POST", "/api/add-user", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.AddUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "body: %s", body)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "All fields are required!", resp.Error)
	}
}

func TestAddUser_Duplicate(t *testing.T) {
	mockUserSvc := new(MockUserService)
	mockUserSvc.On("CreateUser", "dup@example.com", "pass", "admin").Return(services.ErrUserExists)
	h := NewHandlers(nil, mockUserSvc, nil, nil, nil, newQuietAuditor(), nil)

	body := `{"user":"dup@example.com","password":"pass","role":"admin"}`
	req := httptest.NewRequest("POST", "/api/add-user", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.AddUser(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "User already exists!", resp.Error)
}

func TestAddUser_ServiceError(t *testing.T) {
	mockUserSvc := new(MockUserService)
	mockUserSvc.On("CreateUser", "a@b.c", "pass", "admin").Return(errors.New("database is locked"))
	h := NewHandlers(nil, mockUserSvc, nil, nil, nil, newQuietAuditor(), nil)

	body := `{"user":"a@b.c","password":"pass","role":"admin"}`
	req := httptest.NewRequest("POST", "/api/add-user", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.AddUser(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
