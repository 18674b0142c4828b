package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/model"
)

type mockActivityStore struct{ mock.Mock }

func (m *mockActivityStore) GetByID(ctx context.Context, id uint) (*model.Activity, error) {
	args := m.Called(ctx, id)
	if a, _ := args.Get(0).(*model.Activity); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockActivityStore) List(ctx context.Context, limit, offset int, search string, publishedOnly bool) ([]model.Activity, int64, error) {
	args := m.Called(ctx, limit, offset, search, publishedOnly)
	activities, _ := args.Get(0).([]model.Activity)
	return activities, args.Get(1).(int64), args.Error(2)
}
func (m *mockActivityStore) Create(ctx context.Context, activity *model.Activity) error {
	return m.Called(ctx, activity).Error(0)
}
func (m *mockActivityStore) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockActivityStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockProgramStore struct{ mock.Mock }

func (m *mockProgramStore) ListByActivity(ctx context.Context, activityID uint) ([]model.ActivityProgram, error) {
	args := m.Called(ctx, activityID)
	items, _ := args.Get(0).([]model.ActivityProgram)
	return items, args.Error(1)
}
func (m *mockProgramStore) ReplaceAll(ctx context.Context, activityID uint, items []model.ActivityProgram) ([]model.ActivityProgram, error) {
	args := m.Called(ctx, activityID, items)
	saved, _ := args.Get(0).([]model.ActivityProgram)
	return saved, args.Error(1)
}

type mockOrganizationStore struct{ mock.Mock }

func (m *mockOrganizationStore) ListByActivity(ctx context.Context, activityID uint) ([]model.ActivityOrganization, error) {
	args := m.Called(ctx, activityID)
	items, _ := args.Get(0).([]model.ActivityOrganization)
	return items, args.Error(1)
}
func (m *mockOrganizationStore) ReplaceAll(ctx context.Context, activityID uint, items []model.ActivityOrganization) ([]model.ActivityOrganization, error) {
	args := m.Called(ctx, activityID, items)
	saved, _ := args.Get(0).([]model.ActivityOrganization)
	return saved, args.Error(1)
}

func TestReplacePrograms_ParentMissing(t *testing.T) {
	as := &mockActivityStore{}
	as.On("GetByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	ps := &mockProgramStore{}

	svc := NewActivityService(as, ps, &mockOrganizationStore{})
	_, err := svc.ReplacePrograms(context.Background(), 5, []dto.ActivityProgramInput{
		{Order: 1, Name: "Pembukaan"},
	})

	require.ErrorIs(t, err, apperrors.ErrActivityNotFound)
	// The old collection survives untouched when the parent is gone
	ps.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplacePrograms_OrderPreserved(t *testing.T) {
	as := &mockActivityStore{}
	as.On("GetByID", mock.Anything, uint(5)).Return(&model.Activity{Model: gorm.Model{ID: 5}}, nil)

	ps := &mockProgramStore{}
	ps.On("ReplaceAll", mock.Anything, uint(5), mock.MatchedBy(func(items []model.ActivityProgram) bool {
		return len(items) == 2 &&
			items[0].ActivityID == 5 && items[0].Order == 2 &&
			items[1].ActivityID == 5 && items[1].Order == 1
	})).Return([]model.ActivityProgram{
		{Model: gorm.Model{ID: 11}, ActivityID: 5, Order: 1, Name: "Pembukaan"},
		{Model: gorm.Model{ID: 12}, ActivityID: 5, Order: 2, Name: "Diskusi"},
	}, nil)

	svc := NewActivityService(as, ps, &mockOrganizationStore{})
	saved, err := svc.ReplacePrograms(context.Background(), 5, []dto.ActivityProgramInput{
		{Order: 2, Name: "Diskusi"},
		{Order: 1, Name: "Pembukaan"},
	})

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, uint(11), saved[0].ID)
	ps.AssertExpectations(t)
}

func TestReplaceOrganizations_EmptyListClears(t *testing.T) {
	as := &mockActivityStore{}
	as.On("GetByID", mock.Anything, uint(5)).Return(&model.Activity{Model: gorm.Model{ID: 5}}, nil)

	os := &mockOrganizationStore{}
	os.On("ReplaceAll", mock.Anything, uint(5), mock.MatchedBy(func(items []model.ActivityOrganization) bool {
		return len(items) == 0
	})).Return([]model.ActivityOrganization{}, nil)

	svc := NewActivityService(as, &mockProgramStore{}, os)
	saved, err := svc.ReplaceOrganizations(context.Background(), 5, nil)

	require.NoError(t, err)
	assert.Empty(t, saved)
	os.AssertExpectations(t)
}

func TestActivityUpdate_EmptyPatchRejected(t *testing.T) {
	as := &mockActivityStore{}

	svc := NewActivityService(as, &mockProgramStore{}, &mockOrganizationStore{})
	_, err := svc.Update(context.Background(), 5, &dto.UpdateActivityRequest{})

	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	as.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
