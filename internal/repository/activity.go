package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetByID loads an activity with its ordered child collections.
func (r *ActivityRepository) GetByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	result := r.db.WithContext(ctx).
		Preload("Programs", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order", id`)
		}).
		Preload("Organizations", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order", id`)
		}).
		Where("id = ?", id).
		First(&activity)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.GetLogger().Error("Failed to get activity",
				zap.Uint("activity_id", id),
				zap.Error(result.Error))
		}
		return nil, result.Error
	}
	return &activity, nil
}

// List returns a page of activities. publishedOnly hides drafts from
// the public listing.
func (r *ActivityRepository) List(ctx context.Context, limit, offset int, search string, publishedOnly bool) ([]model.Activity, int64, error) {
	var activities []model.Activity
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Activity{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR summary ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		logger.GetLogger().Error("Failed to count activities", zap.Error(err))
		return nil, 0, err
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&activities).Error; err != nil {
		logger.GetLogger().Error("Failed to list activities",
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Error(err))
		return nil, 0, err
	}

	return activities, total, nil
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	result := r.db.WithContext(ctx).Create(activity)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to create activity",
			zap.String("title", activity.Title),
			zap.Error(result.Error))
		return result.Error
	}

	logger.GetLogger().Info("Activity created",
		zap.Uint("activity_id", activity.ID),
		zap.String("title", activity.Title))
	return nil
}

// Update applies the given column set to an existing activity.
func (r *ActivityRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to update activity",
			zap.Uint("activity_id", id),
			zap.Error(result.Error))
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an activity together with its child collections.
func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("activity_id = ?", id).Delete(&model.ActivityProgram{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("activity_id = ?", id).Delete(&model.ActivityOrganization{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Activity{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil && err != gorm.ErrRecordNotFound {
		logger.GetLogger().Error("Failed to delete activity",
			zap.Uint("activity_id", id),
			zap.Error(err))
	}
	return err
}
