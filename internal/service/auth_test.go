package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/mailer"
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

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

type mockThrottle struct{ mock.Mock }

func (m *mockThrottle) IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	args := m.Called(ctx, key, window)
	return args.Get(0).(int64), args.Error(1)
}

// --- builder ---

func newAuthService(us *mockUserStore, os *mockOTPStore, ml *mockMailer, th *mockThrottle) *AuthService {
	var mailDep mailer.Mailer
	if ml != nil {
		mailDep = ml
	}
	var thDep OTPThrottle
	if th != nil {
		thDep = th
	}
	return NewAuthService(us, os, NewJWTService("test-secret", time.Hour), mailDep, thDep, AuthConfig{
		OTPTTL:           5 * time.Minute,
		OTPRequestLimit:  3,
		OTPRequestWindow: 10 * time.Minute,
	})
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

// --- Register ---

func TestRegister_DuplicateEmail(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "taken@example.org").Return(&model.User{Email: "taken@example.org"}, nil)

	svc := newAuthService(us, &mockOTPStore{}, nil, nil)
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Budi",
		Email:     "taken@example.org",
	})

	require.ErrorIs(t, err, apperrors.ErrEmailExists)
	us.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DefaultsToMemberRole(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "new@example.org").Return(nil, gorm.ErrRecordNotFound)
	us.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleUser && u.Validated && u.Password == ""
	})).Return(nil)

	svc := newAuthService(us, &mockOTPStore{}, nil, nil)
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Budi",
		Email:     "new@example.org",
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoleUser.String(), resp.Role)
	us.AssertExpectations(t)
}

// --- RequestOTP ---

func TestRequestOTP_ReplacesOutstandingCode(t *testing.T) {
	user := &model.User{Model: gorm.Model{ID: 7}, FirstName: "Sari", Email: "sari@example.org"}

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	os := &mockOTPStore{}
	os.On("Replace", mock.Anything, mock.MatchedBy(func(o *model.OneTimePasscode) bool {
		return o.UserID == 7 && len(o.Code) == 6 && o.ExpiresAt.Equal(fixedNow().Add(5*time.Minute))
	})).Return(nil)

	ml := &mockMailer{}
	ml.On("SendEmail", user.Email, mock.Anything, mock.Anything).Return(nil)

	svc := newAuthService(us, os, ml, nil)
	svc.now = fixedNow

	require.NoError(t, svc.RequestOTP(context.Background(), user.Email))
	os.AssertExpectations(t)
	ml.AssertExpectations(t)
}

func TestRequestOTP_Throttled(t *testing.T) {
	th := &mockThrottle{}
	th.On("IncrWithWindow", mock.Anything, mock.Anything, 10*time.Minute).Return(int64(4), nil)

	us := &mockUserStore{}
	os := &mockOTPStore{}

	svc := newAuthService(us, os, nil, th)
	err := svc.RequestOTP(context.Background(), "sari@example.org")

	require.ErrorIs(t, err, apperrors.ErrTooManyRequests)
	us.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	os.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestRequestOTP_ThrottleOutageDoesNotBlockLogin(t *testing.T) {
	user := &model.User{Model: gorm.Model{ID: 7}, Email: "sari@example.org"}

	th := &mockThrottle{}
	th.On("IncrWithWindow", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("redis down"))

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	os := &mockOTPStore{}
	os.On("Replace", mock.Anything, mock.Anything).Return(nil)

	ml := &mockMailer{}
	ml.On("SendEmail", user.Email, mock.Anything, mock.Anything).Return(nil)

	svc := newAuthService(us, os, ml, th)
	require.NoError(t, svc.RequestOTP(context.Background(), user.Email))
}

// --- VerifyOTP ---

func validOTP(userID uint) *model.OneTimePasscode {
	return &model.OneTimePasscode{
		UserID:    userID,
		Code:      "123456",
		ExpiresAt: fixedNow().Add(2 * time.Minute),
	}
}

func TestVerifyOTP_Success(t *testing.T) {
	user := &model.User{Model: gorm.Model{ID: 7}, Email: "sari@example.org", Role: model.RoleUser}

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	os := &mockOTPStore{}
	os.On("GetByUserID", mock.Anything, uint(7)).Return(validOTP(7), nil)
	os.On("ConsumeByUserID", mock.Anything, uint(7)).Return(true, nil)

	svc := newAuthService(us, os, nil, nil)
	svc.now = fixedNow

	resp, err := svc.VerifyOTP(context.Background(), user.Email, "123456")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, user.Email, resp.User.Email)

	// The issued token round-trips back to the same user id
	gotID, err := svc.jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), gotID)
}

func TestVerifyOTP_ExpiredWinsOverMismatch(t *testing.T) {
	user := &model.User{Model: gorm.Model{ID: 7}, Email: "sari@example.org"}

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	otp := validOTP(7)
	otp.ExpiresAt = fixedNow().Add(-time.Second)

	os := &mockOTPStore{}
	os.On("GetByUserID", mock.Anything, uint(7)).Return(otp, nil)

	svc := newAuthService(us, os, nil, nil)
	svc.now = fixedNow

	// Submitting the wrong code against an expired row still reports
	// expired, never mismatch
	_, err := svc.VerifyOTP(context.Background(), user.Email, "999999")
	require.ErrorIs(t, err, apperrors.ErrOtpExpired)
	os.AssertNotCalled(t, "ConsumeByUserID", mock.Anything, mock.Anything)
}

func TestVerifyOTP_Mismatch(t *testing.T) {
	user := &model.User{Model: gorm.Model{ID: 7}, Email: "sari@example.org"}

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	os := &mockOTPStore{}
	os.On("GetByUserID", mock.Anything, uint(7)).Return(validOTP(7), nil)

	svc := newAuthService(us, os, nil, nil)
	svc.now = fixedNow

	_, err := svc.VerifyOTP(context.Background(), user.Email, "654321")
	require.ErrorIs(t, err, apperrors.ErrOtpMismatch)
	os.AssertNotCalled(t, "ConsumeByUserID", mock.Anything, mock.Anything)
}

func TestVerifyOTP_NoOutstandingCode(t *testing.T) {
	user := &model.User{Model: gorm.Model{ID: 7}, Email: "sari@example.org"}

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	os := &mockOTPStore{}
	os.On("GetByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := newAuthService(us, os, nil, nil)
	svc.now = fixedNow

	_, err := svc.VerifyOTP(context.Background(), user.Email, "123456")
	require.ErrorIs(t, err, apperrors.ErrOtpNotFound)
}

func TestVerifyOTP_ConcurrentConsumeLoses(t *testing.T) {
	user := &model.User{Model: gorm.Model{ID: 7}, Email: "sari@example.org"}

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	os := &mockOTPStore{}
	os.On("GetByUserID", mock.Anything, uint(7)).Return(validOTP(7), nil)
	// The row was deleted between the read and the consuming delete
	os.On("ConsumeByUserID", mock.Anything, uint(7)).Return(false, nil)

	svc := newAuthService(us, os, nil, nil)
	svc.now = fixedNow

	resp, err := svc.VerifyOTP(context.Background(), user.Email, "123456")
	require.ErrorIs(t, err, apperrors.ErrOtpNotFound)
	assert.Nil(t, resp)
}

func TestVerifyOTP_UnknownEmail(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "ghost@example.org").Return(nil, gorm.ErrRecordNotFound)

	svc := newAuthService(us, &mockOTPStore{}, nil, nil)
	_, err := svc.VerifyOTP(context.Background(), "ghost@example.org", "123456")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

// --- VerifySession ---

func TestVerifySession_DeletedAccount(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := newAuthService(us, &mockOTPStore{}, nil, nil)
	_, err := svc.VerifySession(context.Background(), 42)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
