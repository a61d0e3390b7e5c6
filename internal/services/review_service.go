package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ohtu-ilmo/review-service/internal/cache"
	"github.com/ohtu-ilmo/review-service/internal/events"
	"github.com/ohtu-ilmo/review-service/internal/models"
	"github.com/ohtu-ilmo/review-service/internal/repositories"
	"github.com/ohtu-ilmo/review-service/internal/review"
	"github.com/ohtu-ilmo/review-service/internal/validator"
)

const (
	answeredIDsCacheTTL = 5 * time.Minute
	eventSource         = "review-service"
	eventVersion        = "1.0"
)

func answeredIDsCacheKey(reviewerID string) string {
	return "review:answered:" + reviewerID
}

// CreateReviewRequest carries one submitted answer sheet.
type CreateReviewRequest struct {
	GroupID     uint         `json:"group_id" validate:"required"`
	GroupName   string       `json:"group_name" validate:"required,max=200"`
	ReviewerID  string       `json:"user_id" validate:"required,max=50"`
	AnswerSheet review.Sheet `json:"answer_sheet"`
}

// ReviewService owns stored reviews: the write-once create with the
// existing-answer check, and the queries the review coordinator loads from.
type ReviewService interface {
	Create(ctx context.Context, req *CreateReviewRequest) (*models.InstructorReview, error)
	GetByID(ctx context.Context, id uint) (*models.InstructorReview, error)
	GetAnsweredGroupIDs(ctx context.Context, reviewerID string) ([]uint, error)
	GetGroupsForInstructor(ctx context.Context, instructorID string) ([]*models.Group, error)
}

type reviewService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewReviewService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) ReviewService {
	return &reviewService{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

// Create persists a submitted review exactly once per (group, reviewer).
// A second submission for the same group is rejected with
// ErrReviewAlreadyExists; this is the existing-answer check the client-side
// submission gate relies on.
func (s *reviewService) Create(ctx context.Context, req *CreateReviewRequest) (*models.InstructorReview, error) {
	s.logger.Info("Creating instructor review",
		"group_id", req.GroupID,
		"reviewer_id", req.ReviewerID)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.AnswerSheet) == 0 {
		return nil, ErrEmptyAnswerSheet
	}

	if _, err := s.repo.Group().GetByID(ctx, req.GroupID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	exists, err := s.repo.Review().ExistsForGroup(ctx, req.GroupID, req.ReviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, ErrReviewAlreadyExists
	}

	rev := &models.InstructorReview{
		GroupID:     req.GroupID,
		GroupName:   req.GroupName,
		ReviewerID:  req.ReviewerID,
		AnswerSheet: datatypes.NewJSONType(req.AnswerSheet),
	}
	if err := s.repo.Review().Create(ctx, rev); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrReviewAlreadyExists
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// The cached answered set is stale now; next load recomputes it.
	if err := s.cache.Delete(ctx, answeredIDsCacheKey(req.ReviewerID)); err != nil {
		s.logger.Warn("failed to invalidate answered ids cache",
			"reviewer_id", req.ReviewerID,
			"error", err)
	}

	s.publishSubmitted(ctx, rev)

	s.logger.Info("Instructor review created",
		"review_id", rev.ID,
		"group_id", rev.GroupID,
		"reviewer_id", rev.ReviewerID)
	return rev, nil
}

func (s *reviewService) GetByID(ctx context.Context, id uint) (*models.InstructorReview, error) {
	rev, err := s.repo.Review().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return rev, nil
}

// GetAnsweredGroupIDs returns the group IDs the reviewer has already
// submitted, cached per reviewer and invalidated on Create.
func (s *reviewService) GetAnsweredGroupIDs(ctx context.Context, reviewerID string) ([]uint, error) {
	key := answeredIDsCacheKey(reviewerID)

	var ids []uint
	err := s.cache.Get(ctx, key, &ids)
	if err == nil {
		return ids, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("answered ids cache read failed", "reviewer_id", reviewerID, "error", err)
	}

	ids, err = s.repo.Review().GetAnsweredGroupIDs(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, ids, answeredIDsCacheTTL); err != nil {
		s.logger.Warn("answered ids cache write failed", "reviewer_id", reviewerID, "error", err)
	}
	return ids, nil
}

func (s *reviewService) GetGroupsForInstructor(ctx context.Context, instructorID string) ([]*models.Group, error) {
	return s.repo.Group().GetByInstructor(ctx, instructorID)
}

func (s *reviewService) publishSubmitted(ctx context.Context, rev *models.InstructorReview) {
	event := &events.ReviewEvent{
		ID:        uuid.New().String(),
		Type:      events.EventReviewSubmitted,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   eventVersion,
		Data: events.ReviewSubmittedEvent{
			ReviewID:    rev.ID,
			GroupID:     rev.GroupID,
			GroupName:   rev.GroupName,
			ReviewerID:  rev.ReviewerID,
			Students:    len(rev.AnswerSheet.Data()),
			SubmittedAt: rev.CreatedAt,
		},
	}
	if err := s.publisher.PublishReviewEvent(ctx, event); err != nil {
		// Persistence already succeeded; the event stream catches up later.
		s.logger.Error("failed to publish review submitted event",
			"review_id", rev.ID,
			"error", err)
	}
}
