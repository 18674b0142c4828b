package model

import (
	"time"

	"gorm.io/gorm"
)

// OneTimePasscode is the single outstanding login code for a user.
// Issuing a new code replaces the row wholesale; verification deletes
// it, so a consumed code can never be replayed.
type OneTimePasscode struct {
	gorm.Model
	UserID    uint      `gorm:"column:user_id;uniqueIndex;not null"`
	Code      string    `gorm:"column:code;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
}

// Expired reports whether the code is past its validity window.
func (o *OneTimePasscode) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
