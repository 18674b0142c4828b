package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/dto"
	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

type DailyWorkRepository struct {
	db *gorm.DB
}

func NewDailyWorkRepository(db *gorm.DB) *DailyWorkRepository {
	return &DailyWorkRepository{db: db}
}

func (r *DailyWorkRepository) GetByID(ctx context.Context, id uint) (*model.DailyWork, error) {
	var work model.DailyWork
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&work)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.GetLogger().Error("Failed to get daily work entry",
				zap.Uint("work_id", id),
				zap.Error(result.Error))
		}
		return nil, result.Error
	}
	return &work, nil
}

// ListByUser returns a page of the user's own entries, newest first.
func (r *DailyWorkRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]model.DailyWork, int64, error) {
	var entries []model.DailyWork
	var total int64

	query := r.db.WithContext(ctx).Model(&model.DailyWork{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		logger.GetLogger().Error("Failed to count daily work entries",
			zap.Uint("user_id", userID),
			zap.Error(err))
		return nil, 0, err
	}

	if err := query.Order("work_date DESC, id DESC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		logger.GetLogger().Error("Failed to list daily work entries",
			zap.Uint("user_id", userID),
			zap.Error(err))
		return nil, 0, err
	}

	return entries, total, nil
}

// ListFiltered serves the admin statistics view.
func (r *DailyWorkRepository) ListFiltered(ctx context.Context, filter dto.DailyWorkStatisticsFilter) ([]model.DailyWork, error) {
	var entries []model.DailyWork

	query := r.db.WithContext(ctx).Model(&model.DailyWork{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.From != nil {
		query = query.Where("work_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("work_date <= ?", *filter.To)
	}

	if err := query.Order("work_date DESC, id DESC").Find(&entries).Error; err != nil {
		logger.GetLogger().Error("Failed to list daily work statistics", zap.Error(err))
		return nil, err
	}

	return entries, nil
}

func (r *DailyWorkRepository) Create(ctx context.Context, work *model.DailyWork) error {
	result := r.db.WithContext(ctx).Create(work)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to create daily work entry",
			zap.Uint("user_id", work.UserID),
			zap.Error(result.Error))
		return result.Error
	}
	return nil
}

func (r *DailyWorkRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.DailyWork{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to update daily work entry",
			zap.Uint("work_id", id),
			zap.Error(result.Error))
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DailyWorkRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.DailyWork{}, id)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to delete daily work entry",
			zap.Uint("work_id", id),
			zap.Error(result.Error))
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
