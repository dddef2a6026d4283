package repository

import (
	"context"

	"eventdesk/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for event persistence.
var (
	// ErrEventNotFound is returned when no event has the requested ID.
	ErrEventNotFound = errors.New("event not found")
)

// EventRepository defines the metadata index for events, keyed by owning user.
type EventRepository interface {
	// Create appends an event to its owner's sequence.
	Create(ctx context.Context, event *entity.Event) error

	// FindByOwner returns the owner's events, newest first. An owner with no events
	// yields an empty slice.
	FindByOwner(ctx context.Context, userID string) ([]*entity.Event, error)

	// FindByID retrieves an event by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Event, error)
}
