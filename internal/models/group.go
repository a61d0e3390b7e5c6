package models

import (
	"time"

	"github.com/ohtu-ilmo/review-service/internal/review"
	"gorm.io/datatypes"
)

// Group is a project group assigned to an instructor. The roster is stored
// as a JSON column; group membership is managed upstream and read-only here.
type Group struct {
	ID           uint                                     `json:"id" gorm:"primaryKey"`
	Name         string                                   `json:"group_name" gorm:"column:group_name;not null;size:200"`
	InstructorID string                                   `json:"instructor_id" gorm:"not null;size:50;index"`
	Students     datatypes.JSONType[[]review.StudentName] `json:"students"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Group) TableName() string {
	return "groups"
}

// Info converts the stored group into the review core's view of it.
func (g *Group) Info() review.GroupInfo {
	return review.GroupInfo{
		ID:       g.ID,
		Name:     g.Name,
		Students: g.Students.Data(),
	}
}
