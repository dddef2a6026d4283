package repository

import (
	"context"

	"eventdesk/internal/domain/entity"
)

// GalleryImageRepository defines the metadata index for gallery images, keyed by event.
type GalleryImageRepository interface {
	// Create appends an image to its event's sequence without checking the event exists.
	Create(ctx context.Context, image *entity.GalleryImage) error

	// FindByEvent returns the event's images, newest first.
	FindByEvent(ctx context.Context, eventID string) ([]*entity.GalleryImage, error)
}
