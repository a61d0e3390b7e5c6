package models

import (
	"time"

	"github.com/ohtu-ilmo/review-service/internal/review"
	"gorm.io/datatypes"
)

// InstructorReview is the persisted form of a submitted review. One row per
// (group, reviewer); rows are write-once and never updated. The answer
// sheet is stored as JSON in the shape the review core marshals.
type InstructorReview struct {
	ID          uint                             `json:"id" gorm:"primaryKey"`
	GroupID     uint                             `json:"group_id" gorm:"not null;uniqueIndex:idx_review_group_reviewer"`
	GroupName   string                           `json:"group_name" gorm:"not null;size:200"`
	ReviewerID  string                           `json:"user_id" gorm:"not null;size:50;uniqueIndex:idx_review_group_reviewer;index"`
	AnswerSheet datatypes.JSONType[review.Sheet] `json:"answer_sheet"`

	CreatedAt time.Time `json:"created_at"`
}

func (InstructorReview) TableName() string {
	return "instructor_reviews"
}
