package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// List returns partners, restricted to active ones for public callers.
func (r *PartnerRepository) List(ctx context.Context, activeOnly bool) ([]model.Partner, error) {
	var partners []model.Partner
	query := r.db.WithContext(ctx).Model(&model.Partner{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("name").Find(&partners).Error; err != nil {
		logger.GetLogger().Error("Failed to list partners",
			zap.Bool("active_only", activeOnly),
			zap.Error(err))
		return nil, err
	}
	return partners, nil
}

func (r *PartnerRepository) GetByID(ctx context.Context, id uint) (*model.Partner, error) {
	var partner model.Partner
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&partner)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.GetLogger().Error("Failed to get partner",
				zap.Uint("partner_id", id),
				zap.Error(result.Error))
		}
		return nil, result.Error
	}
	return &partner, nil
}

func (r *PartnerRepository) Create(ctx context.Context, partner *model.Partner) error {
	result := r.db.WithContext(ctx).Create(partner)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to create partner",
			zap.String("name", partner.Name),
			zap.Error(result.Error))
		return result.Error
	}

	logger.GetLogger().Info("Partner created",
		zap.Uint("partner_id", partner.ID),
		zap.String("name", partner.Name))
	return nil
}

func (r *PartnerRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Partner{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to update partner",
			zap.Uint("partner_id", id),
			zap.Error(result.Error))
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Partner{}, id)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to delete partner",
			zap.Uint("partner_id", id),
			zap.Error(result.Error))
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
