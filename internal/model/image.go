package model

import (
	"time"

	"gorm.io/gorm"
)

// Image is a picture file attached to a Product.
type Image struct {
	ID        uint   `gorm:"primaryKey"`
	File      string `gorm:"not null"`
	ProductID uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
