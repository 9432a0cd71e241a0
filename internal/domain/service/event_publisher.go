package service

import (
	"context"
	"time"
)

// SavedPropertyEvent is emitted whenever a profile saves or unsaves a
// property. Downstream consumers (trust scoring, feed enrichment) subscribe
// to these on the event bus.
type SavedPropertyEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ProfileID  string    `json:"profile_id"`
	PropertyID string    `json:"property_id"`
	FolderID   string    `json:"folder_id,omitempty"`
	Action     string    `json:"action"` // constants.SavedPropertyActionSaved / ...Unsaved
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSavedPropertyEvent publishes a saved-property event for async processing
	PublishSavedPropertyEvent(ctx context.Context, event *SavedPropertyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
