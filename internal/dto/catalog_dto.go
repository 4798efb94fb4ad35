package dto

// ─── Brand ───────────────────────────────────────────────────────────────────

type CreateBrandRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type UpdateBrandRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type BrandResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ─── Category ────────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type CategoryResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ─── SubCategory ─────────────────────────────────────────────────────────────

type CreateSubCategoryRequest struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	CategoryID uint   `json:"category_id"`
}

type UpdateSubCategoryRequest struct {
	Name       *string `json:"name"`
	Image      *string `json:"image"`
	CategoryID *uint   `json:"category_id"`
}

type SubCategoryResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	CategoryID uint   `json:"category_id"`
}

// ─── Section ─────────────────────────────────────────────────────────────────

type CreateSectionRequest struct {
	Name string `json:"name"`
}

type UpdateSectionRequest struct {
	Name *string `json:"name"`
}

type SectionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
