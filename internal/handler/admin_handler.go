package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/response"
	"github.com/trainhub/trainhub-backend/internal/service"
	"github.com/trainhub/trainhub-backend/internal/validator"
)

// AdminHandler handles admin account management endpoints.
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// List godoc
// GET /api/v1/admins?page=1&per_page=10
func (h *AdminHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	admins, total, err := h.adminService.List(c.Request.Context(), page, perPage)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, admins, response.NewPagination(page, perPage, total))
}

// Get godoc
// GET /api/v1/admins/:id
func (h *AdminHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, admin)
}

// Update godoc
// PATCH /api/v1/admins/:id
// Partial update; a password field is re-hashed before persisting.
func (h *AdminHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.AdminUpdateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.Update(c.Request.Context(), id, req)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, admin)
}

// Delete godoc
// DELETE /api/v1/admins/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
