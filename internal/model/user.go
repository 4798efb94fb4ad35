package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext. Token carries the pending email-validation token and is cleared
// once the account is validated.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Surname   string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Image     *string
	Token     *string
	Locked    bool `gorm:"not null;default:false"`
	Validated bool `gorm:"not null;default:false"`
	RoleID    uint `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Role      *Role     `gorm:"foreignKey:RoleID"`
	Orders    []Order   `gorm:"foreignKey:UserID"`
	Addresses []Address `gorm:"foreignKey:UserID"`
}
