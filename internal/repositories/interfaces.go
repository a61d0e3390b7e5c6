package repositories

import (
	"context"
	"errors"

	"github.com/ohtu-ilmo/review-service/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type TopicFilters struct {
	Active    *bool  `json:"active"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
	SortBy    string `json:"sort_by"`    // "created_at", "title"
	SortOrder string `json:"sort_order"` // "asc", "desc"
}

// ===== REPOSITORY INTERFACES =====

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uint) (*models.Group, error)
	GetByInstructor(ctx context.Context, instructorID string) ([]*models.Group, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *models.InstructorReview) error
	GetByID(ctx context.Context, id uint) (*models.InstructorReview, error)
	GetAnsweredGroupIDs(ctx context.Context, reviewerID string) ([]uint, error)
	ExistsForGroup(ctx context.Context, groupID uint, reviewerID string) (bool, error)
}

type TopicRepository interface {
	Create(ctx context.Context, topic *models.Topic) error
	GetByID(ctx context.Context, id uint) (*models.Topic, error)
	List(ctx context.Context, filters TopicFilters) ([]*models.Topic, int64, error)
	Update(ctx context.Context, topic *models.Topic) error
}

// Repository aggregates all repositories behind one dependency.
type Repository interface {
	Group() GroupRepository
	Review() ReviewRepository
	Topic() TopicRepository
}

// IsNotFoundError checks if error represents a missing record
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError checks if error represents a uniqueness violation
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
