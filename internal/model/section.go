package model

import (
	"time"

	"gorm.io/gorm"
)

// Section is a storefront placement ("visited", "offers", ...) a product
// can be listed under.
type Section struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
