package model

import (
	"time"

	"gorm.io/gorm"
)

// DailyWork is a member's self-reported work entry. Only the owning
// user may change or remove it.
type DailyWork struct {
	gorm.Model
	UserID      uint      `gorm:"column:user_id;index;not null"`
	WorkDate    time.Time `gorm:"column:work_date;not null"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	Hours       float64   `gorm:"column:hours"`
}
