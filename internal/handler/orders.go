package handler

import (
	"fmt"
	"net/http"

	"storefront/internal/dto"
	"storefront/internal/infra"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// List GET /v1/orders?user_id=N
func (h *OrdersHandler) List(c *gin.Context) {
	if raw := c.Query("user_id"); raw != "" {
		userID, ok := parseQueryID(c, raw)
		if !ok {
			return
		}
		resp, err := h.svc.GetByUser(c.Request.Context(), userID)
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

// Get GET /v1/orders/:id
func (h *OrdersHandler) Get(c *gin.Context) {
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

// Create POST /v1/orders
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
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

// UpdateStatus PATCH /v1/orders/:id/status
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/orders/:id
func (h *OrdersHandler) Delete(c *gin.Context) {
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

// Receipt GET /v1/orders/:id/receipt streams the order receipt as PDF.
func (h *OrdersHandler) Receipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.svc.Model(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	pdfBytes, err := infra.OrderReceipt(order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=order-%d.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
