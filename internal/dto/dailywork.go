package dto

import "time"

type CreateDailyWorkRequest struct {
	WorkDate    time.Time `json:"work_date" binding:"required"`
	Title       string    `json:"title" binding:"required,min=1,max=200"`
	Description string    `json:"description"`
	Hours       float64   `json:"hours" binding:"omitempty,gt=0,lte=24"`
}

type UpdateDailyWorkRequest struct {
	WorkDate    *time.Time `json:"work_date"`
	Title       *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Hours       *float64   `json:"hours" binding:"omitempty,gt=0,lte=24"`
}

type DailyWorkResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	WorkDate    time.Time `json:"work_date"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Hours       float64   `json:"hours,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DailyWorkStatisticsFilter narrows the admin statistics listing.
type DailyWorkStatisticsFilter struct {
	UserID uint
	From   *time.Time
	To     *time.Time
}
