package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/model"
)

func TestUpdateRole_Success(t *testing.T) {
	us := &mockUserStore{}
	us.On("UpdateRole", mock.Anything, uint(7), model.RoleModerator).Return(nil)
	us.On("GetByID", mock.Anything, uint(7)).Return(&model.User{
		Model: gorm.Model{ID: 7},
		Email: "sari@example.org",
		Role:  model.RoleModerator,
	}, nil)

	svc := NewUserService(us)
	resp, err := svc.UpdateRole(context.Background(), 7, "MODERATOR")

	require.NoError(t, err)
	assert.Equal(t, "MODERATOR", resp.Role)
	us.AssertExpectations(t)
}

func TestUpdateRole_UnknownRoleRejected(t *testing.T) {
	us := &mockUserStore{}

	svc := NewUserService(us)
	_, err := svc.UpdateRole(context.Background(), 7, "ROOT")

	require.ErrorIs(t, err, apperrors.ErrInvalidRole)
	// Nothing reaches storage when the role fails parsing
	us.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRole_TargetMissing(t *testing.T) {
	us := &mockUserStore{}
	us.On("UpdateRole", mock.Anything, uint(99), model.RoleAdmin).Return(gorm.ErrRecordNotFound)

	svc := NewUserService(us)
	_, err := svc.UpdateRole(context.Background(), 99, "ADMIN")

	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserList_Pagination(t *testing.T) {
	us := &mockUserStore{}
	us.On("List", mock.Anything, 10, 0, "").Return([]model.User{
		{Model: gorm.Model{ID: 1}, Email: "a@example.org", Role: model.RoleUser},
		{Model: gorm.Model{ID: 2}, Email: "b@example.org", Role: model.RoleAdmin},
	}, int64(25), nil)

	svc := NewUserService(us)
	users, total, pageTotal, err := svc.List(context.Background(), 10, 0, "")

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(25), total)
	assert.Equal(t, 3, pageTotal)
}
