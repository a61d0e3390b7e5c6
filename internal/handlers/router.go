package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ohtu-ilmo/review-service/internal/services"
	"github.com/ohtu-ilmo/review-service/internal/utils"
)

type HandlerManager struct {
	reviewHandler *ReviewHandler
	topicHandler  *TopicHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		reviewHandler: NewReviewHandler(serviceManager.Review(), serviceManager.Export(), logger),
		topicHandler:  NewTopicHandler(serviceManager.Topic(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Instructor review routes
		reviews := v1.Group("/instructor-reviews")
		{
			reviews.POST("", hm.reviewHandler.CreateReview)
			reviews.GET("/answered", hm.reviewHandler.GetAnsweredGroupIDs)
			reviews.GET("/:id", hm.reviewHandler.GetReview)
			reviews.GET("/:id/export", hm.reviewHandler.ExportReview)
		}

		// Group routes (read-only; membership is managed upstream)
		groups := v1.Group("/groups")
		{
			groups.GET("", hm.reviewHandler.GetGroups)
		}

		// Topic moderation routes
		topics := v1.Group("/topics")
		{
			topics.POST("", hm.topicHandler.CreateTopic)
			topics.GET("", hm.topicHandler.ListTopics)
			topics.GET("/:id", hm.topicHandler.GetTopic)
			topics.PUT("/:id", hm.topicHandler.UpdateTopic)
		}
	}
}
