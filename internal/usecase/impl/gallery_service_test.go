package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/domain/repository"
	"eventdesk/internal/domain/service"
	"eventdesk/internal/infra/persistence/memory"
	mockService "eventdesk/internal/mocks/service"
	mockUsecase "eventdesk/internal/mocks/usecase"
	"eventdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// galleryServiceFixtures holds all test dependencies for gallery service tests.
type galleryServiceFixtures struct {
	service     *galleryService
	galleryRepo repository.GalleryImageRepository
	storage     *mockUsecase.MockStorageUsecase
	publisher   *mockService.MockEventPublisher
}

func createTestGalleryService(t *testing.T) galleryServiceFixtures {
	galleryRepo := memory.NewGalleryRepository()
	storage := mockUsecase.NewMockStorageUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewGalleryService(GalleryServiceParams{
		GalleryRepo: galleryRepo,
		Storage:     storage,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	}).(*galleryService)

	return galleryServiceFixtures{
		service:     svc,
		galleryRepo: galleryRepo,
		storage:     storage,
		publisher:   publisher,
	}
}

func newImage() *usecase.UploadInput {
	return &usecase.UploadInput{
		Body:          strings.NewReader("image-bytes"),
		MimeType:      "image/jpeg",
		SuggestedName: "IMG_0001.jpg",
	}
}

func TestGalleryService_UploadImage(t *testing.T) {
	fx := createTestGalleryService(t)
	ctx := context.Background()

	image := newImage()
	fx.storage.EXPECT().Upload(mock.Anything, image).
		Return(&entity.StoredObjectRef{ObjectID: "obj-9", MimeType: "image/jpeg"}, nil)
	fx.storage.EXPECT().ProxyURL("obj-9").Return("http://localhost:8080/image/obj-9")
	fx.publisher.EXPECT().
		PublishMediaEvent(mock.Anything, mock.MatchedBy(func(event *service.MediaEvent) bool {
			return event.Type == service.MediaEventImageUploaded &&
				event.EventID == "evt-1" &&
				event.ObjectID == "obj-9" &&
				event.ImageID != ""
		})).
		Return(nil)

	// The event ID is never checked against recorded events.
	recorded, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{EventID: "evt-1", Image: image})
	require.NoError(t, err)
	assert.NotEmpty(t, recorded.ID)
	assert.Equal(t, "obj-9", recorded.ImageFileID)
	assert.Equal(t, "http://localhost:8080/image/obj-9", recorded.ImageURL)

	images, err := fx.service.ListImages(ctx, "evt-1")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, recorded.ID, images[0].ID)
}

func TestGalleryService_UploadImage_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.UploadImageInput
	}{
		{name: "nil input", input: nil},
		{name: "missing event", input: &usecase.UploadImageInput{Image: newImage()}},
		{name: "missing image", input: &usecase.UploadImageInput{EventID: "evt-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGalleryService(t)

			_, err := fx.service.UploadImage(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestGalleryService_UploadImage_UploadFailure(t *testing.T) {
	fx := createTestGalleryService(t)
	ctx := context.Background()

	fx.storage.EXPECT().Upload(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoCredentials)

	_, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{EventID: "evt-1", Image: newImage()})
	require.ErrorIs(t, err, domainerrors.ErrNoCredentials)

	images, err := fx.service.ListImages(ctx, "evt-1")
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestGalleryService_UploadImage_PublishFailureIgnored(t *testing.T) {
	fx := createTestGalleryService(t)

	fx.storage.EXPECT().Upload(mock.Anything, mock.Anything).
		Return(&entity.StoredObjectRef{ObjectID: "obj-9", MimeType: "image/jpeg"}, nil)
	fx.storage.EXPECT().ProxyURL("obj-9").Return("http://localhost:8080/image/obj-9")
	fx.publisher.EXPECT().PublishMediaEvent(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{EventID: "evt-1", Image: newImage()})
	assert.NoError(t, err)
}

func TestGalleryService_ListImages_NewestFirst(t *testing.T) {
	fx := createTestGalleryService(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, fileID := range []string{"a", "b", "c"} {
		require.NoError(t, fx.galleryRepo.Create(ctx, &entity.GalleryImage{
			ImageFileID: fileID,
			EventID:     "evt-1",
			UploadedAt:  base.Add(time.Duration(i) * time.Second),
		}))
	}

	images, err := fx.service.ListImages(ctx, "evt-1")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "c", images[0].ImageFileID)
	assert.Equal(t, "a", images[2].ImageFileID)

	_, err = fx.service.ListImages(ctx, " ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
