package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/logger"
	"github.com/rumahpeduli/cms-api/pkg/mailer"
)

// OTPThrottle limits how often a single email may request a passcode.
type OTPThrottle interface {
	IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// AuthConfig is the tunable part of the login flow.
type AuthConfig struct {
	OTPTTL           time.Duration
	OTPRequestLimit  int64
	OTPRequestWindow time.Duration
}

type AuthService struct {
	users    UserStore
	otps     OTPStore
	jwt      *JWTService
	mail     mailer.Mailer
	throttle OTPThrottle
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthService(users UserStore, otps OTPStore, jwt *JWTService, mail mailer.Mailer, throttle OTPThrottle, cfg AuthConfig) *AuthService {
	return &AuthService{
		users:    users,
		otps:     otps,
		jwt:      jwt,
		mail:     mail,
		throttle: throttle,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Register creates a user account. Accounts are validated immediately,
// login happens through the passcode flow and no password is stored.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailExists
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Role:         model.RoleUser,
		Validated:    true,
		Password:     "",
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.LogAuth(fmt.Sprint(user.ID), "register", true,
		zap.String("email", user.Email))

	resp := toUserResponse(user)
	return &resp, nil
}

// RequestOTP generates and emails a fresh passcode, replacing any
// outstanding one for the user.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	if s.throttle != nil {
		key := constants.CacheKeyOtpThrottle + email
		count, err := s.throttle.IncrWithWindow(ctx, key, s.cfg.OTPRequestWindow)
		if err != nil {
			// Redis being down must not lock members out of login
			logger.GetLogger().Warn("OTP throttle unavailable",
				zap.String("email", email),
				zap.Error(err))
		} else if count > s.cfg.OTPRequestLimit {
			return apperrors.ErrTooManyRequests
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	code, err := generateOTPCode()
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	otp := &model.OneTimePasscode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: s.now().Add(s.cfg.OTPTTL),
	}
	if err := s.otps.Replace(ctx, otp); err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	body, err := mailer.RenderOTPMail(mailer.OTPMailData{
		FirstName:  user.FirstName,
		Code:       code,
		TTLMinutes: int(s.cfg.OTPTTL.Minutes()),
		AppName:    constants.AppName,
	})
	if err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.mail.SendEmail(user.Email, "Kode masuk "+constants.AppName, body); err != nil {
		logger.GetLogger().Error("Failed to send OTP mail",
			zap.Uint("user_id", user.ID),
			zap.Error(err))
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.LogAuth(fmt.Sprint(user.ID), "request_otp", true)
	return nil
}

// VerifyOTP checks the submitted code and, on success, consumes it and
// mints a session token. Check order: user existence, code existence,
// expiry, then exact match, so an expired code always reports expired.
// The consuming delete is the serialization point for concurrent
// attempts with the same code: whichever delete removes the row wins,
// the loser surfaces as code-not-found and never receives a token.
func (s *AuthService) VerifyOTP(ctx context.Context, email, submittedCode string) (*dto.VerifyOTPResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	otp, err := s.otps.GetByUserID(ctx, user.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			logger.LogAuth(fmt.Sprint(user.ID), "verify_otp", false,
				zap.String("reason", "not_found"))
			return nil, apperrors.ErrOtpNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if otp.Expired(s.now()) {
		logger.LogAuth(fmt.Sprint(user.ID), "verify_otp", false,
			zap.String("reason", "expired"))
		return nil, apperrors.ErrOtpExpired
	}

	if otp.Code != submittedCode {
		logger.LogAuth(fmt.Sprint(user.ID), "verify_otp", false,
			zap.String("reason", "mismatch"))
		return nil, apperrors.ErrOtpMismatch
	}

	consumed, err := s.otps.ConsumeByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if !consumed {
		// A concurrent verification got there first
		logger.LogAuth(fmt.Sprint(user.ID), "verify_otp", false,
			zap.String("reason", "already_consumed"))
		return nil, apperrors.ErrOtpNotFound
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.LogAuth(fmt.Sprint(user.ID), "verify_otp", true)

	return &dto.VerifyOTPResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// VerifySession resolves an already-authenticated user id back into the
// live profile, surfacing a deleted account as not found.
func (s *AuthService) VerifySession(ctx context.Context, userID uint) (*dto.VerifySessionResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return &dto.VerifySessionResponse{
		Valid: true,
		User:  toUserResponse(user),
	}, nil
}

// generateOTPCode produces a 6-digit zero-padded code from crypto/rand.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Phone:        user.Phone,
		Organization: user.Organization,
		Role:         user.Role.String(),
		Validated:    user.Validated,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
