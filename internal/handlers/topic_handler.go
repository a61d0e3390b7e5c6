package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ohtu-ilmo/review-service/internal/services"
	"github.com/ohtu-ilmo/review-service/internal/utils"
)

type TopicHandler struct {
	topics services.TopicService
	logger utils.Logger
}

func NewTopicHandler(topics services.TopicService, logger utils.Logger) *TopicHandler {
	return &TopicHandler{
		topics: topics,
		logger: logger,
	}
}

func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req services.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	topic, err := h.topics.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.LogError(err, "failed to create topic")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// ListTopics returns topics newest first. ?filter=active|inactive narrows
// by active state; anything else lists everything.
func (h *TopicHandler) ListTopics(c *gin.Context) {
	req := services.ListTopicsRequest{
		Filter: c.DefaultQuery("filter", "all"),
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid limit"})
			return
		}
		req.Limit = n
	}
	if offset := c.Query("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid offset"})
			return
		}
		req.Offset = n
	}

	topics, total, err := h.topics.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"topics": topics,
		"total":  total,
	})
}

func (h *TopicHandler) GetTopic(c *gin.Context) {
	id, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	topic, err := h.topics.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	id, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	topic, err := h.topics.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.logger.LogError(err, "failed to update topic", "topic_id", id)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}
