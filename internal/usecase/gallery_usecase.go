package usecase

import (
	"context"

	"eventdesk/internal/domain/entity"
)

// UploadImageInput defines the data required to add an image to an event's gallery.
type UploadImageInput struct {
	EventID string
	Image   *UploadInput
}

// GalleryUsecase defines the interface for gallery use cases
type GalleryUsecase interface {
	// UploadImage stores the image and records it under the event. The event is not
	// required to exist.
	UploadImage(ctx context.Context, input *UploadImageInput) (*entity.GalleryImage, error)

	// ListImages returns the event's images, newest first.
	ListImages(ctx context.Context, eventID string) ([]*entity.GalleryImage, error)
}
