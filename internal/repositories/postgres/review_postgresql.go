package postgres

import (
	"context"
	"fmt"

	"github.com/ohtu-ilmo/review-service/internal/models"
	"github.com/ohtu-ilmo/review-service/internal/repositories"
	"gorm.io/gorm"
)

type ReviewPostgreSQL struct {
	db *gorm.DB
}

func NewReviewPostgreSQL(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewPostgreSQL{db: db}
}

// Create stores a submitted review. The existing-answer check runs inside
// the same transaction as the insert so two submissions for one group
// cannot both pass it.
func (r *ReviewPostgreSQL) Create(ctx context.Context, rev *models.InstructorReview) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.InstructorReview{}).
			Where("group_id = ? AND reviewer_id = ?", rev.GroupID, rev.ReviewerID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check existing review: %w", err)
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		if err := tx.Create(rev).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		return nil
	})
}

func (r *ReviewPostgreSQL) GetByID(ctx context.Context, id uint) (*models.InstructorReview, error) {
	var rev models.InstructorReview
	if err := r.db.WithContext(ctx).First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewPostgreSQL) GetAnsweredGroupIDs(ctx context.Context, reviewerID string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.InstructorReview{}).
		Where("reviewer_id = ?", reviewerID).
		Order("group_id ASC").
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get answered group ids: %w", err)
	}
	return ids, nil
}

func (r *ReviewPostgreSQL) ExistsForGroup(ctx context.Context, groupID uint, reviewerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InstructorReview{}).
		Where("group_id = ? AND reviewer_id = ?", groupID, reviewerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return count > 0, nil
}
