package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/logger"
)

// PartnerCache caches the homepage partner listing.
type PartnerCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const partnerCacheTTL = 10 * time.Minute

type PartnerService struct {
	partners PartnerStore
	cache    PartnerCache
}

func NewPartnerService(partners PartnerStore, cache PartnerCache) *PartnerService {
	return &PartnerService{
		partners: partners,
		cache:    cache,
	}
}

// List serves the partner listing, from cache when warm. Public callers
// only see active partners; privileged callers see everything.
func (s *PartnerService) List(ctx context.Context, activeOnly bool) ([]dto.PartnerResponse, error) {
	key := constants.CacheKeyPartnersAll
	if activeOnly {
		key = constants.CacheKeyPartnersLive
	}

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var cached []dto.PartnerResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	partners, err := s.partners.List(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.PartnerResponse, 0, len(partners))
	for i := range partners {
		res = append(res, toPartnerResponse(&partners[i]))
	}

	if s.cache != nil {
		if data, err := json.Marshal(res); err == nil {
			if err := s.cache.Set(ctx, key, data, partnerCacheTTL); err != nil {
				logger.GetLogger().Warn("Failed to cache partner listing",
					zap.String("key", key),
					zap.Error(err))
			}
		}
	}

	return res, nil
}

func (s *PartnerService) Create(ctx context.Context, req *dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	partner := &model.Partner{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Website: req.Website,
		Active:  true,
	}
	if req.Active != nil {
		partner.Active = *req.Active
	}

	if err := s.partners.Create(ctx, partner); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.invalidateCache(ctx)

	resp := toPartnerResponse(partner)
	return &resp, nil
}

func (s *PartnerService) Update(ctx context.Context, id uint, req *dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	if err := s.partners.Update(ctx, id, updates); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPartnerNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.invalidateCache(ctx)

	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	resp := toPartnerResponse(partner)
	return &resp, nil
}

func (s *PartnerService) Delete(ctx context.Context, id uint) error {
	if err := s.partners.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrPartnerNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *PartnerService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.CacheKeyPartnersAll, constants.CacheKeyPartnersLive); err != nil {
		logger.GetLogger().Warn("Failed to invalidate partner cache", zap.Error(err))
	}
}

func toPartnerResponse(p *model.Partner) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:        p.ID,
		Name:      p.Name,
		LogoURL:   p.LogoURL,
		Website:   p.Website,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
