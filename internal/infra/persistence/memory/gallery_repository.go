package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"eventdesk/internal/domain/entity"
	"eventdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// galleryRepository implements the repository.GalleryImageRepository interface.
type galleryRepository struct {
	mu      sync.RWMutex
	byEvent map[string][]*entity.GalleryImage
}

// NewGalleryRepository is the constructor for galleryRepository.
func NewGalleryRepository() repository.GalleryImageRepository {
	return &galleryRepository{
		byEvent: make(map[string][]*entity.GalleryImage),
	}
}

// Create appends an image to its event's sequence. The event ID is a soft reference
// and is not checked against recorded events.
func (repo *galleryRepository) Create(_ context.Context, image *entity.GalleryImage) error {
	if image == nil {
		return errors.New("gallery image is nil")
	}
	if image.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate gallery image id")
		}
		image.ID = id.String()
	}
	if image.UploadedAt.IsZero() {
		image.UploadedAt = time.Now()
	}

	stored := *image

	repo.mu.Lock()
	repo.byEvent[stored.EventID] = append(repo.byEvent[stored.EventID], &stored)
	repo.mu.Unlock()

	return nil
}

// FindByEvent returns copies of the event's images sorted by UploadedAt, newest first.
// Images uploaded at the same instant are listed latest insert first.
func (repo *galleryRepository) FindByEvent(_ context.Context, eventID string) ([]*entity.GalleryImage, error) {
	repo.mu.RLock()
	stored := repo.byEvent[eventID]
	images := make([]*entity.GalleryImage, 0, len(stored))
	for _, image := range slices.Backward(stored) {
		clone := *image
		images = append(images, &clone)
	}
	repo.mu.RUnlock()

	slices.SortStableFunc(images, func(a, b *entity.GalleryImage) int {
		return cmp.Compare(b.UploadedAt.UnixNano(), a.UploadedAt.UnixNano())
	})

	return images, nil
}
