package model

import (
	"time"

	"gorm.io/gorm"
)

// Address is a shipping address owned by a User.
type Address struct {
	ID         uint   `gorm:"primaryKey"`
	Location   string `gorm:"not null"`
	City       string `gorm:"not null"`
	Province   string `gorm:"not null"`
	PostalCode string `gorm:"not null"`
	Country    string `gorm:"not null"`
	UserID     uint   `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	User *User `gorm:"foreignKey:UserID"`
}
