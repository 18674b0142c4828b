package service

import (
	"context"
	"math"

	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/model"
)

type DailyWorkService struct {
	works DailyWorkStore
}

func NewDailyWorkService(works DailyWorkStore) *DailyWorkService {
	return &DailyWorkService{works: works}
}

func (s *DailyWorkService) Create(ctx context.Context, callerID uint, req *dto.CreateDailyWorkRequest) (*dto.DailyWorkResponse, error) {
	work := &model.DailyWork{
		UserID:      callerID,
		WorkDate:    req.WorkDate,
		Title:       req.Title,
		Description: req.Description,
		Hours:       req.Hours,
	}

	if err := s.works.Create(ctx, work); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	resp := toDailyWorkResponse(work)
	return &resp, nil
}

func (s *DailyWorkService) ListOwn(ctx context.Context, callerID uint, limit, offset int) ([]dto.DailyWorkResponse, int64, int, error) {
	entries, total, err := s.works.ListByUser(ctx, callerID, limit, offset)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	pageTotal := int(math.Ceil(float64(total) / float64(limit)))
	res := make([]dto.DailyWorkResponse, 0, len(entries))
	for i := range entries {
		res = append(res, toDailyWorkResponse(&entries[i]))
	}

	return res, total, pageTotal, nil
}

// Update mutates an entry after confirming the caller owns it. The
// ownership check runs before any write.
func (s *DailyWorkService) Update(ctx context.Context, callerID, id uint, req *dto.UpdateDailyWorkRequest) (*dto.DailyWorkResponse, error) {
	work, err := s.ownedEntry(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.WorkDate != nil {
		updates["work_date"] = *req.WorkDate
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Hours != nil {
		updates["hours"] = *req.Hours
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	if err := s.works.Update(ctx, work.ID, updates); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrWorkNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	updated, err := s.works.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	resp := toDailyWorkResponse(updated)
	return &resp, nil
}

func (s *DailyWorkService) Delete(ctx context.Context, callerID, id uint) error {
	work, err := s.ownedEntry(ctx, callerID, id)
	if err != nil {
		return err
	}

	if err := s.works.Delete(ctx, work.ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrWorkNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// Statistics is the admin-only cross-member listing.
func (s *DailyWorkService) Statistics(ctx context.Context, filter dto.DailyWorkStatisticsFilter) ([]dto.DailyWorkResponse, error) {
	entries, err := s.works.ListFiltered(ctx, filter)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.DailyWorkResponse, 0, len(entries))
	for i := range entries {
		res = append(res, toDailyWorkResponse(&entries[i]))
	}
	return res, nil
}

func (s *DailyWorkService) ownedEntry(ctx context.Context, callerID, id uint) (*model.DailyWork, error) {
	work, err := s.works.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrWorkNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if work.UserID != callerID {
		return nil, apperrors.ErrNotOwner
	}
	return work, nil
}

func toDailyWorkResponse(w *model.DailyWork) dto.DailyWorkResponse {
	return dto.DailyWorkResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		WorkDate:    w.WorkDate,
		Title:       w.Title,
		Description: w.Description,
		Hours:       w.Hours,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
