package model

import (
	"gorm.io/gorm"
)

type Partner struct {
	gorm.Model
	Name    string `gorm:"column:name;not null"`
	LogoURL string `gorm:"column:logo_url"`
	Website string `gorm:"column:website"`
	Active  bool   `gorm:"column:active;default:true;not null"`
}
