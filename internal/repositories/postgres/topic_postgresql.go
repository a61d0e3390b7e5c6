package postgres

import (
	"context"
	"fmt"

	"github.com/ohtu-ilmo/review-service/internal/models"
	"github.com/ohtu-ilmo/review-service/internal/repositories"
	"gorm.io/gorm"
)

type TopicPostgreSQL struct {
	db *gorm.DB
}

func NewTopicPostgreSQL(db *gorm.DB) repositories.TopicRepository {
	return &TopicPostgreSQL{db: db}
}

func (t *TopicPostgreSQL) Create(ctx context.Context, topic *models.Topic) error {
	if err := t.db.WithContext(ctx).Create(topic).Error; err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

func (t *TopicPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Topic, error) {
	var topic models.Topic
	if err := t.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// List returns topics newest first by default, optionally narrowed to
// active or inactive ones.
func (t *TopicPostgreSQL) List(ctx context.Context, filters repositories.TopicFilters) ([]*models.Topic, int64, error) {
	query := t.db.WithContext(ctx).Model(&models.Topic{})

	if filters.Active != nil {
		query = query.Where("active = ?", *filters.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count topics: %w", err)
	}

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := filters.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var topics []*models.Topic
	if err := query.Find(&topics).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, total, nil
}

func (t *TopicPostgreSQL) Update(ctx context.Context, topic *models.Topic) error {
	result := t.db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", topic.ID).
		Updates(map[string]interface{}{
			"title":         topic.Title,
			"customer_name": topic.CustomerName,
			"email":         topic.Email,
			"description":   topic.Description,
			"active":        topic.Active,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
