package memory

import (
	"context"
	"testing"
	"time"

	"eventdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryRepository_SoftReference(t *testing.T) {
	ctx := context.Background()
	repo := NewGalleryRepository()

	image := &entity.GalleryImage{
		ImageFileID: "file-9",
		ImageURL:    "http://localhost:8080/image/file-9",
		EventID:     "no-such-event",
	}
	require.NoError(t, repo.Create(ctx, image))
	assert.NotEmpty(t, image.ID)

	images, err := repo.FindByEvent(ctx, "no-such-event")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, *image, *images[0])
}

func TestGalleryRepository_FindByEvent_SortsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewGalleryRepository()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{time.Minute, 10 * time.Minute, 0, 5 * time.Minute} {
		require.NoError(t, repo.Create(ctx, &entity.GalleryImage{
			EventID:    "event-1",
			UploadedAt: base.Add(offset),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.GalleryImage{EventID: "event-2", UploadedAt: base}))

	images, err := repo.FindByEvent(ctx, "event-1")
	require.NoError(t, err)
	require.Len(t, images, 4)
	assert.Equal(t, base.Add(10*time.Minute), images[0].UploadedAt)
	assert.Equal(t, base, images[3].UploadedAt)
	for i := 1; i < len(images); i++ {
		assert.False(t, images[i].UploadedAt.After(images[i-1].UploadedAt))
		assert.Equal(t, "event-1", images[i].EventID)
	}
}

func TestGalleryRepository_FindByEvent_EqualTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := NewGalleryRepository()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for _, fileID := range []string{"file-a", "file-b", "file-c"} {
		require.NoError(t, repo.Create(ctx, &entity.GalleryImage{EventID: "event-1", ImageFileID: fileID, UploadedAt: at}))
	}

	images, err := repo.FindByEvent(ctx, "event-1")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "file-c", images[0].ImageFileID)
	assert.Equal(t, "file-b", images[1].ImageFileID)
	assert.Equal(t, "file-a", images[2].ImageFileID)
}

func TestGalleryRepository_FindByEvent_Empty(t *testing.T) {
	images, err := NewGalleryRepository().FindByEvent(context.Background(), "unknown")
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}
