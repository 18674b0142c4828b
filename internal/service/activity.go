package service

import (
	"context"
	"encoding/json"
	"math"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/model"
)

type ActivityService struct {
	activities    ActivityStore
	programs      ProgramStore
	organizations OrganizationStore
}

func NewActivityService(activities ActivityStore, programs ProgramStore, organizations OrganizationStore) *ActivityService {
	return &ActivityService{
		activities:    activities,
		programs:      programs,
		organizations: organizations,
	}
}

func (s *ActivityService) GetByID(ctx context.Context, id uint) (*dto.ActivityResponse, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	resp := toActivityResponse(activity, true)
	return &resp, nil
}

func (s *ActivityService) List(ctx context.Context, limit, offset int, search string, publishedOnly bool) ([]dto.ActivityResponse, int64, int, error) {
	activities, total, err := s.activities.List(ctx, limit, offset, search, publishedOnly)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	pageTotal := int(math.Ceil(float64(total) / float64(limit)))
	res := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		res = append(res, toActivityResponse(&activities[i], false))
	}

	return res, total, pageTotal, nil
}

func (s *ActivityService) Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	activity := &model.Activity{
		Title:     req.Title,
		Summary:   req.Summary,
		Body:      req.Body,
		Location:  req.Location,
		StartsAt:  req.StartsAt,
		Published: req.Published,
	}
	if len(req.Gallery) > 0 {
		activity.Gallery = datatypes.JSON(req.Gallery)
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	resp := toActivityResponse(activity, true)
	return &resp, nil
}

func (s *ActivityService) Update(ctx context.Context, id uint, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}
	if len(req.Gallery) > 0 {
		updates["gallery"] = datatypes.JSON(req.Gallery)
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	if err := s.activities.Update(ctx, id, updates); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrActivityNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// ReplacePrograms swaps the full agenda of an activity. Order values
// are taken verbatim from the caller; the store guarantees atomicity.
func (s *ActivityService) ReplacePrograms(ctx context.Context, activityID uint, inputs []dto.ActivityProgramInput) ([]dto.ActivityProgramResponse, error) {
	if _, err := s.activities.GetByID(ctx, activityID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	items := make([]model.ActivityProgram, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, model.ActivityProgram{
			ActivityID:  activityID,
			Order:       in.Order,
			Name:        in.Name,
			Description: in.Description,
			TimeLabel:   in.TimeLabel,
		})
	}

	saved, err := s.programs.ReplaceAll(ctx, activityID, items)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.ActivityProgramResponse, 0, len(saved))
	for i := range saved {
		res = append(res, toProgramResponse(&saved[i]))
	}
	return res, nil
}

// ReplaceOrganizations swaps the full participating-organization list
// of an activity. Same semantics as ReplacePrograms.
func (s *ActivityService) ReplaceOrganizations(ctx context.Context, activityID uint, inputs []dto.ActivityOrganizationInput) ([]dto.ActivityOrganizationResponse, error) {
	if _, err := s.activities.GetByID(ctx, activityID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	items := make([]model.ActivityOrganization, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, model.ActivityOrganization{
			ActivityID: activityID,
			Order:      in.Order,
			Name:       in.Name,
			RoleLabel:  in.RoleLabel,
			LogoURL:    in.LogoURL,
			Website:    in.Website,
		})
	}

	saved, err := s.organizations.ReplaceAll(ctx, activityID, items)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.ActivityOrganizationResponse, 0, len(saved))
	for i := range saved {
		res = append(res, toOrganizationResponse(&saved[i]))
	}
	return res, nil
}

func toActivityResponse(activity *model.Activity, withChildren bool) dto.ActivityResponse {
	resp := dto.ActivityResponse{
		ID:        activity.ID,
		Title:     activity.Title,
		Summary:   activity.Summary,
		Body:      activity.Body,
		Location:  activity.Location,
		StartsAt:  activity.StartsAt,
		Published: activity.Published,
		CreatedAt: activity.CreatedAt,
		UpdatedAt: activity.UpdatedAt,
	}
	if len(activity.Gallery) > 0 {
		resp.Gallery = json.RawMessage(activity.Gallery)
	}
	if withChildren {
		for i := range activity.Programs {
			resp.Programs = append(resp.Programs, toProgramResponse(&activity.Programs[i]))
		}
		for i := range activity.Organizations {
			resp.Organizations = append(resp.Organizations, toOrganizationResponse(&activity.Organizations[i]))
		}
	}
	return resp
}

func toProgramResponse(p *model.ActivityProgram) dto.ActivityProgramResponse {
	return dto.ActivityProgramResponse{
		ID:          p.ID,
		Order:       p.Order,
		Name:        p.Name,
		Description: p.Description,
		TimeLabel:   p.TimeLabel,
	}
}

func toOrganizationResponse(o *model.ActivityOrganization) dto.ActivityOrganizationResponse {
	return dto.ActivityOrganizationResponse{
		ID:        o.ID,
		Order:     o.Order,
		Name:      o.Name,
		RoleLabel: o.RoleLabel,
		LogoURL:   o.LogoURL,
		Website:   o.Website,
	}
}
