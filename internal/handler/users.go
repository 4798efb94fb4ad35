package handler

import (
	"net/http"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/middleware"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// requireSelfOrAdmin rejects access to another user's account unless the
// caller holds the admin role. Writes the 403 response itself.
func requireSelfOrAdmin(c *gin.Context, id uint) bool {
	claims := middleware.GetClaims(c)
	if claims != nil && (claims.Role == "admin" || claims.UserID == id) {
		return true
	}
	respondError(c, apierror.Forbidden("insufficient permissions"))
	return false
}

// List GET /v1/users
func (h *UsersHandler) List(c *gin.Context) {
	resp, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/users/:id (self or admin)
func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register POST /v1/users is open; new accounts start unvalidated
// and receive a validation email.
func (h *UsersHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
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

// Update PUT /v1/users/:id (self or admin). Role and lock state are
// admin-only fields.
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !requireSelfOrAdmin(c, id) {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	if (req.RoleID != nil || req.Locked != nil) && (claims == nil || claims.Role != "admin") {
		respondError(c, apierror.Forbidden("only admins can change role or lock state"))
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/users/:id
func (h *UsersHandler) Delete(c *gin.Context) {
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
