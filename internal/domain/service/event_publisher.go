package service

import (
	"context"
	"time"
)

// Media event types
const (
	MediaEventCreated       = "event.created"
	MediaEventImageUploaded = "gallery.image_uploaded"
)

// MediaEvent announces a new event or gallery image to downstream consumers
type MediaEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id,omitempty"`
	ImageID    string    `json:"image_id,omitempty"`
	ObjectID   string    `json:"object_id"`
	ProxyURL   string    `json:"proxy_url"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMediaEvent publishes a media event for async processing
	PublishMediaEvent(ctx context.Context, event *MediaEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
