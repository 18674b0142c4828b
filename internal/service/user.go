package service

import (
	"context"
	"math"

	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/dto"
	apperrors "github.com/rumahpeduli/cms-api/internal/errors"
	"github.com/rumahpeduli/cms-api/internal/model"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateRole assigns a new role. The change binds on the target's next
// request because tokens never carry the role.
func (s *UserService) UpdateRole(ctx context.Context, id uint, rawRole string) (*dto.UserResponse, error) {
	role, err := model.ParseRole(rawRole)
	if err != nil {
		return nil, apperrors.ErrInvalidRole
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *UserService) List(ctx context.Context, limit, offset int, search string) ([]dto.UserResponse, int64, int, error) {
	users, total, err := s.users.List(ctx, limit, offset, search)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	pageTotal := int(math.Ceil(float64(total) / float64(limit)))
	res := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, toUserResponse(&users[i]))
	}

	return res, total, pageTotal, nil
}
