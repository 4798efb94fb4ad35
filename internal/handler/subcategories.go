package handler

import (
	"net/http"

	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type SubCategoriesHandler struct{ svc service.SubCategoryService }

func NewSubCategoriesHandler(svc service.SubCategoryService) *SubCategoriesHandler {
	return &SubCategoriesHandler{svc: svc}
}

// List GET /v1/subcategories?category_id=N
func (h *SubCategoriesHandler) List(c *gin.Context) {
	if raw := c.Query("category_id"); raw != "" {
		id, ok := parseQueryID(c, raw)
		if !ok {
			return
		}
		resp, err := h.svc.GetByCategory(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	resp, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/subcategories/:id
func (h *SubCategoriesHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /v1/subcategories
func (h *SubCategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateSubCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /v1/subcategories/:id
func (h *SubCategoriesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSubCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/subcategories/:id
func (h *SubCategoriesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
