package service

import (
	"context"

	"github.com/rumahpeduli/cms-api/internal/dto"
	"github.com/rumahpeduli/cms-api/internal/model"
)

// Store interfaces consumed by the service layer. Repositories satisfy
// them against Postgres; tests substitute mocks.

type UserStore interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateRole(ctx context.Context, id uint, role model.Role) error
	List(ctx context.Context, limit, offset int, search string) ([]model.User, int64, error)
}

type OTPStore interface {
	GetByUserID(ctx context.Context, userID uint) (*model.OneTimePasscode, error)
	Replace(ctx context.Context, otp *model.OneTimePasscode) error
	ConsumeByUserID(ctx context.Context, userID uint) (bool, error)
}

type ActivityStore interface {
	GetByID(ctx context.Context, id uint) (*model.Activity, error)
	List(ctx context.Context, limit, offset int, search string, publishedOnly bool) ([]model.Activity, int64, error)
	Create(ctx context.Context, activity *model.Activity) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type ProgramStore interface {
	ListByActivity(ctx context.Context, activityID uint) ([]model.ActivityProgram, error)
	ReplaceAll(ctx context.Context, activityID uint, items []model.ActivityProgram) ([]model.ActivityProgram, error)
}

type OrganizationStore interface {
	ListByActivity(ctx context.Context, activityID uint) ([]model.ActivityOrganization, error)
	ReplaceAll(ctx context.Context, activityID uint, items []model.ActivityOrganization) ([]model.ActivityOrganization, error)
}

type PartnerStore interface {
	List(ctx context.Context, activeOnly bool) ([]model.Partner, error)
	GetByID(ctx context.Context, id uint) (*model.Partner, error)
	Create(ctx context.Context, partner *model.Partner) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type DailyWorkStore interface {
	GetByID(ctx context.Context, id uint) (*model.DailyWork, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]model.DailyWork, int64, error)
	ListFiltered(ctx context.Context, filter dto.DailyWorkStatisticsFilter) ([]model.DailyWork, error)
	Create(ctx context.Context, work *model.DailyWork) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}
