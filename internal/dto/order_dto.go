package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID uint               `json:"user_id"`
	Items  []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	StatusID uint `json:"status_id"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Product   string `json:"product,omitempty"`
	Quantity  int    `json:"quantity"`
}

type OrderResponse struct {
	ID       uint                `json:"id"`
	Total    decimal.Decimal     `json:"total"`
	StatusID uint                `json:"status_id"`
	Status   string              `json:"status,omitempty"`
	UserID   uint                `json:"user_id"`
	Items    []OrderItemResponse `json:"items"`
}
