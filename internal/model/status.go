package model

import (
	"time"

	"gorm.io/gorm"
)

// Status is an order lifecycle state ("pending", "paid", "shipped", ...).
// Rows are seeded, not managed through the API.
type Status struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Status) TableName() string { return "statuses" }
