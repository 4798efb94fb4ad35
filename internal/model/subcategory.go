package model

import (
	"time"

	"gorm.io/gorm"
)

// SubCategory is a second-level classification nested under a Category.
type SubCategory struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Image      string `gorm:"not null"`
	CategoryID uint   `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}

// TableName keeps the table name as a single word, matching the legacy schema.
func (SubCategory) TableName() string { return "subcategories" }
