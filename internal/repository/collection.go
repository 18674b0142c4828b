package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

// ProgramRepository owns the agenda entries of an activity. Writes are
// always full replacements: the whole collection is deleted and
// recreated inside one transaction, so readers observe either the old
// set or the new set and never a mix.
type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// ListByActivity returns the current collection in caller-defined order.
func (r *ProgramRepository) ListByActivity(ctx context.Context, activityID uint) ([]model.ActivityProgram, error) {
	var programs []model.ActivityProgram
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order(`"order", id`).
		Find(&programs).Error
	if err != nil {
		logger.GetLogger().Error("Failed to list programs",
			zap.Uint("activity_id", activityID),
			zap.Error(err))
		return nil, err
	}
	return programs, nil
}

// ReplaceAll swaps the whole collection for the given activity. An
// empty input clears it. Item order values are stored verbatim; row ids
// are regenerated on every call. A failed insert rolls the delete back,
// partial replacement is never observable.
func (r *ProgramRepository) ReplaceAll(ctx context.Context, activityID uint, items []model.ActivityProgram) ([]model.ActivityProgram, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("activity_id = ?", activityID).Delete(&model.ActivityProgram{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		for i := range items {
			items[i].ID = 0
			items[i].ActivityID = activityID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		logger.GetLogger().Error("Failed to replace programs",
			zap.Uint("activity_id", activityID),
			zap.Int("item_count", len(items)),
			zap.Error(err))
		return nil, err
	}

	logger.GetLogger().Info("Programs replaced",
		zap.Uint("activity_id", activityID),
		zap.Int("item_count", len(items)))

	return r.ListByActivity(ctx, activityID)
}

// OrganizationRepository owns the participating-organization entries of
// an activity. Same replacement semantics as ProgramRepository.
type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) ListByActivity(ctx context.Context, activityID uint) ([]model.ActivityOrganization, error) {
	var orgs []model.ActivityOrganization
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order(`"order", id`).
		Find(&orgs).Error
	if err != nil {
		logger.GetLogger().Error("Failed to list organizations",
			zap.Uint("activity_id", activityID),
			zap.Error(err))
		return nil, err
	}
	return orgs, nil
}

func (r *OrganizationRepository) ReplaceAll(ctx context.Context, activityID uint, items []model.ActivityOrganization) ([]model.ActivityOrganization, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("activity_id = ?", activityID).Delete(&model.ActivityOrganization{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		for i := range items {
			items[i].ID = 0
			items[i].ActivityID = activityID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		logger.GetLogger().Error("Failed to replace organizations",
			zap.Uint("activity_id", activityID),
			zap.Int("item_count", len(items)),
			zap.Error(err))
		return nil, err
	}

	logger.GetLogger().Info("Organizations replaced",
		zap.Uint("activity_id", activityID),
		zap.Int("item_count", len(items)))

	return r.ListByActivity(ctx, activityID)
}
