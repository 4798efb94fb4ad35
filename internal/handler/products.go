package handler

import (
	"net/http"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List GET /v1/products supports progressive filtering via query params.
// Every supplied criterion narrows the result; an omitted or zero-valued
// param is ignored.
func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query parameters"))
		return
	}
	resp, err := h.svc.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Count GET /v1/products/count
func (h *ProductsHandler) Count(c *gin.Context) {
	total, err := h.svc.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductCountResponse{Count: total})
}

// Get GET /v1/products/:id
func (h *ProductsHandler) Get(c *gin.Context) {
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

// Create POST /v1/products
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
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

// Update PUT /v1/products/:id
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
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

// Delete DELETE /v1/products/:id
func (h *ProductsHandler) Delete(c *gin.Context) {
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

// AddImage POST /v1/products/:id/images
func (h *ProductsHandler) AddImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddImageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddImage(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RemoveImage DELETE /v1/products/:id/images/:imageID
func (h *ProductsHandler) RemoveImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseID(c, "imageID")
	if !ok {
		return
	}
	if err := h.svc.RemoveImage(c.Request.Context(), id, imageID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
