package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/internal/service"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, _ := args.Get(0).(*model.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*model.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	user.ID = 1
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserStore) UpdateRole(ctx context.Context, id uint, role model.Role) error {
	return m.Called(ctx, id, role).Error(0)
}
func (m *mockUserStore) List(ctx context.Context, limit, offset int, search string) ([]model.User, int64, error) {
	args := m.Called(ctx, limit, offset, search)
	users, _ := args.Get(0).([]model.User)
	return users, args.Get(1).(int64), args.Error(2)
}

type mockOTPStore struct{ mock.Mock }

func (m *mockOTPStore) GetByUserID(ctx context.Context, userID uint) (*model.OneTimePasscode, error) {
	args := m.Called(ctx, userID)
	if o, _ := args.Get(0).(*model.OneTimePasscode); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOTPStore) Replace(ctx context.Context, otp *model.OneTimePasscode) error {
	return m.Called(ctx, otp).Error(0)
}
func (m *mockOTPStore) ConsumeByUserID(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// --- builder ---

func newAuthRouter(us *mockUserStore, os *mockOTPStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewAuthService(us, os, service.NewJWTService("test-secret", time.Hour), nil, nil, service.AuthConfig{
		OTPTTL: 5 * time.Minute,
	})
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/api/v1/register", h.Register)
	r.POST("/api/v1/verify-otp", h.VerifyOTP)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Register ---

func TestRegisterEndpoint_SingleLetterNamesAccepted(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@b.com").Return(nil, gorm.ErrRecordNotFound)
	us.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.FirstName == "A" && u.LastName == "B" && u.Role == model.RoleUser
	})).Return(nil)

	r := newAuthRouter(us, &mockOTPStore{})
	w := postJSON(r, "/api/v1/register", `{"first_name":"A","last_name":"B","email":"a@b.com"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := w.Body.String()
	assert.Contains(t, body, `"role":"USER"`)
	// The password column never leaves the server
	assert.NotContains(t, body, "password")
	us.AssertExpectations(t)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@b.com").Return(&model.User{Email: "a@b.com"}, nil)

	r := newAuthRouter(us, &mockOTPStore{})
	w := postJSON(r, "/api/v1/register", `{"first_name":"A","last_name":"B","email":"a@b.com"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
	us.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterEndpoint_MissingEmail(t *testing.T) {
	r := newAuthRouter(&mockUserStore{}, &mockOTPStore{})
	w := postJSON(r, "/api/v1/register", `{"first_name":"A","last_name":"B"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- VerifyOTP ---

func TestVerifyOTPEndpoint_WrongShapeCodeReportsMismatch(t *testing.T) {
	user := &model.User{Model: gorm.Model{ID: 7}, Email: "a@b.com"}

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	os := &mockOTPStore{}
	os.On("GetByUserID", mock.Anything, uint(7)).Return(&model.OneTimePasscode{
		UserID:    7,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil)

	r := newAuthRouter(us, os)
	// A five-digit submission must reach the comparison and come back
	// as a mismatch, not as a malformed request
	w := postJSON(r, "/api/v1/verify-otp", `{"email":"a@b.com","otp":"12345"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect code")
	os.AssertNotCalled(t, "ConsumeByUserID", mock.Anything, mock.Anything)
}
