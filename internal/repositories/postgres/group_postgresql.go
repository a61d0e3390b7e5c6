package postgres

import (
	"context"
	"fmt"

	"github.com/ohtu-ilmo/review-service/internal/models"
	"github.com/ohtu-ilmo/review-service/internal/repositories"
	"gorm.io/gorm"
)

type GroupPostgreSQL struct {
	db *gorm.DB
}

func NewGroupPostgreSQL(db *gorm.DB) repositories.GroupRepository {
	return &GroupPostgreSQL{db: db}
}

func (g *GroupPostgreSQL) Create(ctx context.Context, group *models.Group) error {
	if err := g.db.WithContext(ctx).Create(group).Error; err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

func (g *GroupPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := g.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByInstructor returns all groups assigned to an instructor, in creation
// order so the pending list is stable between loads.
func (g *GroupPostgreSQL) GetByInstructor(ctx context.Context, instructorID string) ([]*models.Group, error) {
	var groups []*models.Group
	err := g.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Order("created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get groups for instructor: %w", err)
	}
	return groups, nil
}
