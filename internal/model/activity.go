package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Activity struct {
	gorm.Model
	Title         string                 `gorm:"column:title;not null"`
	Summary       string                 `gorm:"column:summary"`
	Body          string                 `gorm:"column:body;type:text"`
	Location      string                 `gorm:"column:location"`
	StartsAt      *time.Time             `gorm:"column:starts_at"`
	Published     bool                   `gorm:"column:published;default:false;not null"`
	Gallery       datatypes.JSON         `gorm:"column:gallery"`
	Programs      []ActivityProgram      `gorm:"constraint:OnDelete:CASCADE"`
	Organizations []ActivityOrganization `gorm:"constraint:OnDelete:CASCADE"`
}

// ActivityProgram is an ordered agenda entry of an activity. Order is
// caller supplied and stored verbatim; rows have no identity across
// writes because the whole collection is replaced as one unit.
type ActivityProgram struct {
	gorm.Model
	ActivityID  uint   `gorm:"column:activity_id;index;not null"`
	Order       int    `gorm:"column:order;not null"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description"`
	TimeLabel   string `gorm:"column:time_label"`
}

// ActivityOrganization is an ordered participating-organization entry
// of an activity. Same replacement semantics as ActivityProgram.
type ActivityOrganization struct {
	gorm.Model
	ActivityID uint   `gorm:"column:activity_id;index;not null"`
	Order      int    `gorm:"column:order;not null"`
	Name       string `gorm:"column:name;not null"`
	RoleLabel  string `gorm:"column:role_label"`
	LogoURL    string `gorm:"column:logo_url"`
	Website    string `gorm:"column:website"`
}
