package model

import (
	"time"

	"gorm.io/gorm"
)

// Category is a top-level product classification.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Image     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	SubCategories []SubCategory `gorm:"foreignKey:CategoryID"`
}
