// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"animehub/internal/config"
	"animehub/internal/models"
	"animehub/internal/services"
)

// --- MOCK AUDITOR ---
type MockAuditor struct {
	mock.Mock
}

var _ services.Auditor = (*MockAuditor)(nil)

func (m *MockAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	m.Called(ctx, action, actor, resource, details)
}

// --- MOCK INFO SERVICE ---
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() models.Info {
	args := m.Called()
	return args.Get(0).(models.Info)
}

// --- MOCK USER SERVICE ---
type MockUserService struct {
	mock.Mock
}

var _ services.UserService = (*MockUserService)(nil)

func (m *MockUserService) Authenticate(email, password string) (*models.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserService) CreateUser(username, password, role string) error {
	args := m.Called(username, password, role)
	return args.Error(0)
}
func (m *MockUserService) InitializeAdminUser(cfg *config.Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

// --- MOCK MEDIA SERVICE ---
type MockMediaService struct {
	mock.Mock
}

var _ services.MediaService = (*MockMediaService)(nil)

func (m *MockMediaService) Create(doc models.Document) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}
func (m *MockMediaService) List(typeFilter string) ([]models.Document, error) {
	args := m.Called(typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}
func (m *MockMediaService) Get(id string) (models.Document, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Document), args.Error(1)
}
func (m *MockMediaService) Update(id string, updates models.Document) (int64, error) {
	args := m.Called(id, updates)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMediaService) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// --- MOCK SCHEDULE SERVICE ---
type MockScheduleService struct {
	mock.Mock
}

var _ services.ScheduleService = (*MockScheduleService)(nil)

func (m *MockScheduleService) Create(doc models.Document) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}
func (m *MockScheduleService) List() ([]models.Document, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

// --- MOCK VISITOR SERVICE ---
type MockVisitorService struct {
	mock.Mock
}

var _ services.VisitorService = (*MockVisitorService)(nil)

func (m *MockVisitorService) Track() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockVisitorService) Stats() (models.VisitorStats, error) {
	args := m.Called()
	return args.Get(0).(models.VisitorStats), args.Error(1)
}

// newQuietAuditor returns a MockAuditor that accepts any Log call. Tests
// that assert on audit events build their own instead.
func newQuietAuditor() *MockAuditor {
	a := new(MockAuditor)
	a.On("Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	return a
}
