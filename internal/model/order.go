package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a purchase placed by a User. Total is computed server-side from
// the item lines at creation time and stored denormalized.
type Order struct {
	ID        uint            `gorm:"primaryKey"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StatusID  uint            `gorm:"not null;index"`
	UserID    uint            `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Status *Status `gorm:"foreignKey:StatusID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Items  []Item  `gorm:"foreignKey:OrderID"`
}
