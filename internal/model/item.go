package model

import (
	"time"

	"gorm.io/gorm"
)

// Item is an order line: a quantity of one product.
type Item struct {
	ID        uint `gorm:"primaryKey"`
	Quantity  int  `gorm:"not null"`
	ProductID uint `gorm:"not null;index"`
	OrderID   uint `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
