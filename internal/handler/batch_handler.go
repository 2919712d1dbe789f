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

// BatchHandler handles batch CRUD and bulk import.
type BatchHandler struct {
	batchService *service.BatchService
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(batchService *service.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// List godoc
// GET /api/v1/batches
func (h *BatchHandler) List(c *gin.Context) {
	batches, err := h.batchService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, batches)
}

// Get godoc
// GET /api/v1/batches/:id
func (h *BatchHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	batch, err := h.batchService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, batch)
}

// Create godoc
// POST /api/v1/batches
func (h *BatchHandler) Create(c *gin.Context) {
	var req model.BatchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	batch, err := h.batchService.Create(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, batch)
}

// Update godoc
// PUT /api/v1/batches/:id
func (h *BatchHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.BatchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	batch, err := h.batchService.Update(c.Request.Context(), id, req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, batch)
}

// Delete godoc
// DELETE /api/v1/batches/:id
func (h *BatchHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.batchService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Batch deleted successfully"})
}

// Import godoc
// POST /api/v1/batches/import
func (h *BatchHandler) Import(c *gin.Context) {
	file, err := openCSVUpload(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	inserted, err := h.batchService.ImportCSV(c.Request.Context(), file)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"inserted": inserted})
}
