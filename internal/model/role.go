package model

import (
	"time"

	"gorm.io/gorm"
)

// Role grants a user an access level ("admin", "customer").
// Rows are seeded, not managed through the API.
type Role struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
