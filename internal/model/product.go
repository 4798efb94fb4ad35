package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog item. Discount is a percentage (0–100) applied to
// Price at order time; it defaults to zero.
type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"index;not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Description   string          `gorm:"type:text;not null"`
	BrandID       uint            `gorm:"not null;index"`
	CategoryID    uint            `gorm:"not null;index"`
	SubcategoryID uint            `gorm:"not null;index"`
	SectionID     uint            `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Brand       *Brand       `gorm:"foreignKey:BrandID"`
	Category    *Category    `gorm:"foreignKey:CategoryID"`
	Subcategory *SubCategory `gorm:"foreignKey:SubcategoryID"`
	Section     *Section     `gorm:"foreignKey:SectionID"`
	Images      []Image      `gorm:"foreignKey:ProductID"`
}
