package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/constants"
	"github.com/rumahpeduli/cms-api/internal/dto"
	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/pkg/redis"
)

type mockPartnerStore struct{ mock.Mock }

func (m *mockPartnerStore) List(ctx context.Context, activeOnly bool) ([]model.Partner, error) {
	args := m.Called(ctx, activeOnly)
	partners, _ := args.Get(0).([]model.Partner)
	return partners, args.Error(1)
}
func (m *mockPartnerStore) GetByID(ctx context.Context, id uint) (*model.Partner, error) {
	args := m.Called(ctx, id)
	if p, _ := args.Get(0).(*model.Partner); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPartnerStore) Create(ctx context.Context, partner *model.Partner) error {
	return m.Called(ctx, partner).Error(0)
}
func (m *mockPartnerStore) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockPartnerStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockPartnerCache struct{ mock.Mock }

func (m *mockPartnerCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}
func (m *mockPartnerCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return m.Called(ctx, key, data, ttl).Error(0)
}
func (m *mockPartnerCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func TestPartnerList_CacheHitSkipsStore(t *testing.T) {
	cached, _ := json.Marshal([]dto.PartnerResponse{{ID: 1, Name: "Yayasan A", Active: true}})

	pc := &mockPartnerCache{}
	pc.On("Get", mock.Anything, constants.CacheKeyPartnersLive).Return(cached, nil)

	ps := &mockPartnerStore{}

	svc := NewPartnerService(ps, pc)
	partners, err := svc.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, "Yayasan A", partners[0].Name)
	ps.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestPartnerList_CacheMissFallsThroughAndWarms(t *testing.T) {
	pc := &mockPartnerCache{}
	pc.On("Get", mock.Anything, constants.CacheKeyPartnersAll).Return(nil, redis.ErrCacheMiss)
	pc.On("Set", mock.Anything, constants.CacheKeyPartnersAll, mock.Anything, partnerCacheTTL).Return(nil)

	ps := &mockPartnerStore{}
	ps.On("List", mock.Anything, false).Return([]model.Partner{
		{Model: gorm.Model{ID: 1}, Name: "Yayasan A", Active: true},
		{Model: gorm.Model{ID: 2}, Name: "Yayasan B", Active: false},
	}, nil)

	svc := NewPartnerService(ps, pc)
	partners, err := svc.List(context.Background(), false)

	require.NoError(t, err)
	assert.Len(t, partners, 2)
	pc.AssertExpectations(t)
}

func TestPartnerCreate_InvalidatesBothCacheKeys(t *testing.T) {
	pc := &mockPartnerCache{}
	pc.On("Delete", mock.Anything, []string{constants.CacheKeyPartnersAll, constants.CacheKeyPartnersLive}).Return(nil)

	ps := &mockPartnerStore{}
	ps.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Partner) bool {
		return p.Name == "Yayasan C" && p.Active
	})).Return(nil)

	svc := NewPartnerService(ps, pc)
	_, err := svc.Create(context.Background(), &dto.CreatePartnerRequest{Name: "Yayasan C"})

	require.NoError(t, err)
	pc.AssertExpectations(t)
}

func TestPartnerList_NoCacheConfigured(t *testing.T) {
	ps := &mockPartnerStore{}
	ps.On("List", mock.Anything, true).Return([]model.Partner{
		{Model: gorm.Model{ID: 1}, Name: "Yayasan A", Active: true},
	}, nil)

	svc := NewPartnerService(ps, nil)
	partners, err := svc.List(context.Background(), true)

	require.NoError(t, err)
	assert.Len(t, partners, 1)
}
