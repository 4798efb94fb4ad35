package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Discount      decimal.Decimal `json:"discount" validate:"omitempty,min=0,max=100"`
	Description   string          `json:"description"`
	BrandID       uint            `json:"brand_id"`
	CategoryID    uint            `json:"category_id"`
	SubcategoryID uint            `json:"subcategory_id"`
	SectionID     uint            `json:"section_id"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Price         *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Discount      *decimal.Decimal `json:"discount" validate:"omitempty,min=0,max=100"`
	Description   *string          `json:"description"`
	BrandID       *uint            `json:"brand_id"`
	CategoryID    *uint            `json:"category_id"`
	SubcategoryID *uint            `json:"subcategory_id"`
	SectionID     *uint            `json:"section_id"`
}

type AddImageRequest struct {
	File string `json:"file"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProductFilter narrows a search. A zero-value field is absent: it does not
// constrain the result. Present fields combine as an AND.
type ProductFilter struct {
	Name          string `form:"name"`
	Description   string `form:"description"`
	BrandID       uint   `form:"brand_id"`
	CategoryID    uint   `form:"category_id"`
	SubcategoryID uint   `form:"subcategory_id"`
	SectionID     uint   `form:"section_id"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type ImageResponse struct {
	ID   uint   `json:"id"`
	File string `json:"file"`
}

type ProductResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Discount      decimal.Decimal `json:"discount"`
	Description   string          `json:"description"`
	BrandID       uint            `json:"brand_id"`
	CategoryID    uint            `json:"category_id"`
	SubcategoryID uint            `json:"subcategory_id"`
	SectionID     uint            `json:"section_id"`
	Images        []ImageResponse `json:"images,omitempty"`
}

type ProductCountResponse struct {
	Count int64 `json:"count"`
}
