package usecase

import (
	"context"

	"eventdesk/internal/domain/entity"
)

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	EventName string
	UserID    string
	Thumbnail *UploadInput
}

// EventUsecase defines the interface for event management use cases
type EventUsecase interface {
	// CreateEvent uploads the thumbnail and records the event under its owner.
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)

	// ListEvents returns the owner's events, newest first.
	ListEvents(ctx context.Context, userID string) ([]*entity.Event, error)

	// GetEvent retrieves a single event.
	GetEvent(ctx context.Context, eventID string) (*entity.Event, error)

	// ShareQRCode renders a PNG QR code pointing at the event.
	ShareQRCode(ctx context.Context, eventID string) ([]byte, error)
}
