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

// TopicHandler handles topic CRUD.
type TopicHandler struct {
	topicService *service.TopicService
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topicService *service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// List godoc
// GET /api/v1/topics?course_id=N
func (h *TopicHandler) List(c *gin.Context) {
	courseID, _ := strconv.Atoi(c.DefaultQuery("course_id", "0"))

	topics, err := h.topicService.List(c.Request.Context(), courseID)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, topics)
}

// Get godoc
// GET /api/v1/topics/:id
func (h *TopicHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	topic, err := h.topicService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, topic)
}

// Create godoc
// POST /api/v1/topics
func (h *TopicHandler) Create(c *gin.Context) {
	var req model.TopicRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	topic, err := h.topicService.Create(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, topic)
}

// Update godoc
// PUT /api/v1/topics/:id
func (h *TopicHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.TopicRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	topic, err := h.topicService.Update(c.Request.Context(), id, req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, topic)
}

// Delete godoc
// DELETE /api/v1/topics/:id
func (h *TopicHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.topicService.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Topic deleted successfully"})
}
