package model

import (
	"time"

	"gorm.io/gorm"
)

// Brand is a product manufacturer or label.
type Brand struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Image     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
