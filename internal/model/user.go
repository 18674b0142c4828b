package model

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName    string `gorm:"column:first_name;not null"`
	LastName     string `gorm:"column:last_name;not null"`
	Email        string `gorm:"column:email;unique;not null"`
	Phone        string `gorm:"column:phone"`
	Organization string `gorm:"column:organization"`
	Role         Role   `gorm:"column:role;type:varchar(20);default:USER;not null"`
	Validated    bool   `gorm:"column:validated;default:true;not null"`
	// Password is kept for schema compatibility. The OTP flow never
	// reads it and registration always stores it empty; only the
	// seeded bootstrap account carries a bcrypt hash.
	Password string `gorm:"column:password;default:''"`
}
