package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ohtu-ilmo/review-service/internal/events"
	"github.com/ohtu-ilmo/review-service/internal/models"
	"github.com/ohtu-ilmo/review-service/internal/repositories"
	"github.com/ohtu-ilmo/review-service/internal/validator"
)

type CreateTopicRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	CustomerName string `json:"customer_name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Description  string `json:"description" validate:"omitempty,max=5000"`
}

type UpdateTopicRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	CustomerName *string `json:"customer_name" validate:"omitempty,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	Active       *bool   `json:"active"`
}

type ListTopicsRequest struct {
	Filter string `json:"filter" validate:"omitempty,topic_filter"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `json:"offset" validate:"omitempty,min=0"`
}

// TopicService handles topic proposal moderation: listing newest first,
// editing, and toggling the active state that controls registration.
type TopicService interface {
	Create(ctx context.Context, req *CreateTopicRequest) (*models.Topic, error)
	GetByID(ctx context.Context, id uint) (*models.Topic, error)
	List(ctx context.Context, req *ListTopicsRequest) ([]*models.Topic, int64, error)
	Update(ctx context.Context, id uint, req *UpdateTopicRequest) (*models.Topic, error)
}

type topicService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTopicService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) TopicService {
	return &topicService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *topicService) Create(ctx context.Context, req *CreateTopicRequest) (*models.Topic, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	topic := &models.Topic{
		Title:        req.Title,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Description:  req.Description,
		Active:       true,
	}
	if err := s.repo.Topic().Create(ctx, topic); err != nil {
		return nil, err
	}

	s.publishTopicEvent(ctx, events.EventTopicCreated, events.TopicCreatedEvent{
		TopicID:      topic.ID,
		Title:        topic.Title,
		CustomerName: topic.CustomerName,
	})

	s.logger.Info("Topic created", "topic_id", topic.ID, "title", topic.Title)
	return topic, nil
}

func (s *topicService) GetByID(ctx context.Context, id uint) (*models.Topic, error) {
	topic, err := s.repo.Topic().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return topic, nil
}

func (s *topicService) List(ctx context.Context, req *ListTopicsRequest) ([]*models.Topic, int64, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, 0, fmt.Errorf("validation failed: %w", err)
	}

	filters := repositories.TopicFilters{
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	switch models.TopicFilter(req.Filter) {
	case models.TopicFilterActive:
		active := true
		filters.Active = &active
	case models.TopicFilterInactive:
		active := false
		filters.Active = &active
	}

	return s.repo.Topic().List(ctx, filters)
}

func (s *topicService) Update(ctx context.Context, id uint, req *UpdateTopicRequest) (*models.Topic, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	topic, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		topic.Title = *req.Title
	}
	if req.CustomerName != nil {
		topic.CustomerName = *req.CustomerName
	}
	if req.Email != nil {
		topic.Email = *req.Email
	}
	if req.Description != nil {
		topic.Description = *req.Description
	}
	if req.Active != nil {
		topic.Active = *req.Active
	}

	if err := s.repo.Topic().Update(ctx, topic); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}

	s.publishTopicEvent(ctx, events.EventTopicUpdated, events.TopicUpdatedEvent{
		TopicID: topic.ID,
		Active:  topic.Active,
	})

	s.logger.Info("Topic updated", "topic_id", topic.ID, "active", topic.Active)
	return topic, nil
}

func (s *topicService) publishTopicEvent(ctx context.Context, eventType events.EventType, data interface{}) {
	event := &events.ReviewEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
	if err := s.publisher.PublishReviewEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish topic event", "event_type", eventType, "error", err)
	}
}
