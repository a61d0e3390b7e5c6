package models

import "time"

// Topic is a project topic proposal moderated by administrators. Active
// controls whether the topic is offered for registration.
type Topic struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Title        string `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	CustomerName string `json:"customer_name" gorm:"not null;size:200" validate:"required"`
	Email        string `json:"email" gorm:"not null;size:200" validate:"required,email"`
	Description  string `json:"description" gorm:"type:text" validate:"omitempty,max=5000"`
	Active       bool   `json:"active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

// TopicFilter narrows topic listings by active state.
type TopicFilter string

const (
	TopicFilterAll      TopicFilter = "all"
	TopicFilterActive   TopicFilter = "active"
	TopicFilterInactive TopicFilter = "inactive"
)

// Matches reports whether the topic passes the filter. Unknown filter
// values behave as "all", matching the original moderation page.
func (f TopicFilter) Matches(t *Topic) bool {
	switch f {
	case TopicFilterActive:
		return t.Active
	case TopicFilterInactive:
		return !t.Active
	default:
		return true
	}
}
