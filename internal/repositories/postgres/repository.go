package postgres

import (
	"fmt"

	"github.com/ohtu-ilmo/review-service/internal/models"
	"github.com/ohtu-ilmo/review-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	group  repositories.GroupRepository
	review repositories.ReviewRepository
	topic  repositories.TopicRepository
}

// NewRepository wires the PostgreSQL implementations behind the aggregate
// Repository interface.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		group:  NewGroupPostgreSQL(db),
		review: NewReviewPostgreSQL(db),
		topic:  NewTopicPostgreSQL(db),
	}
}

func (r *repository) Group() repositories.GroupRepository {
	return r.group
}

func (r *repository) Review() repositories.ReviewRepository {
	return r.review
}

func (r *repository) Topic() repositories.TopicRepository {
	return r.topic
}

// AutoMigrate creates or updates the service's tables.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Group{},
		&models.InstructorReview{},
		&models.Topic{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
