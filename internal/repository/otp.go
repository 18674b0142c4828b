package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

type OTPRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// GetByUserID returns the single outstanding passcode of a user.
func (r *OTPRepository) GetByUserID(ctx context.Context, userID uint) (*model.OneTimePasscode, error) {
	var otp model.OneTimePasscode
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&otp)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.GetLogger().Error("Failed to get passcode",
				zap.Uint("user_id", userID),
				zap.Error(result.Error))
		}
		return nil, result.Error
	}
	return &otp, nil
}

// Replace removes any outstanding passcode of the user and stores the
// new one as a single transaction. The unique index on user_id keeps
// the at-most-one-row invariant even under concurrent requests.
func (r *OTPRepository) Replace(ctx context.Context, otp *model.OneTimePasscode) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", otp.UserID).Delete(&model.OneTimePasscode{}).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
	if err != nil {
		logger.GetLogger().Error("Failed to replace passcode",
			zap.Uint("user_id", otp.UserID),
			zap.Error(err))
		return err
	}
	return nil
}

// ConsumeByUserID deletes the user's passcode and reports whether a row
// was actually removed. This is the serialization point for concurrent
// verification attempts: only the caller that deleted the row may mint
// a session token.
func (r *OTPRepository) ConsumeByUserID(ctx context.Context, userID uint) (bool, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(&model.OneTimePasscode{})
	if result.Error != nil {
		logger.GetLogger().Error("Failed to consume passcode",
			zap.Uint("user_id", userID),
			zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
