package events

import "time"

// EventType represents different types of review events
type EventType string

const (
	// Review events
	EventReviewSubmitted EventType = "review.submitted"

	// Topic moderation events
	EventTopicCreated EventType = "topic.created"
	EventTopicUpdated EventType = "topic.updated"
)

// ReviewEvent is the base event structure published to the stream
type ReviewEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// ReviewSubmittedEvent is emitted once per successfully persisted review.
type ReviewSubmittedEvent struct {
	ReviewID   uint      `json:"review_id"`
	GroupID    uint      `json:"group_id"`
	GroupName  string    `json:"group_name"`
	ReviewerID string    `json:"reviewer_id"`
	Students   int       `json:"students"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// TopicCreatedEvent is emitted when a new topic proposal arrives.
type TopicCreatedEvent struct {
	TopicID      uint   `json:"topic_id"`
	Title        string `json:"title"`
	CustomerName string `json:"customer_name"`
}

// TopicUpdatedEvent is emitted when a topic is edited or its active state
// toggled.
type TopicUpdatedEvent struct {
	TopicID uint `json:"topic_id"`
	Active  bool `json:"active"`
}
