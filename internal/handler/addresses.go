package handler

import (
	"net/http"

	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type AddressesHandler struct{ svc service.AddressService }

func NewAddressesHandler(svc service.AddressService) *AddressesHandler {
	return &AddressesHandler{svc: svc}
}

// ListByUser GET /v1/users/:id/addresses
func (h *AddressesHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/addresses/:id
func (h *AddressesHandler) Get(c *gin.Context) {
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

// Create POST /v1/addresses
func (h *AddressesHandler) Create(c *gin.Context) {
	var req dto.CreateAddressRequest
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

// Update PUT /v1/addresses/:id
func (h *AddressesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAddressRequest
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

// Delete DELETE /v1/addresses/:id
func (h *AddressesHandler) Delete(c *gin.Context) {
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
