package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "eventdesk/internal/delivery/context"
	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/domain/repository"
	"eventdesk/internal/domain/service"
	"eventdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// galleryService implements the GalleryUsecase interface.
type galleryService struct {
	galleryRepo repository.GalleryImageRepository
	storage     usecase.StorageUsecase
	publisher   service.EventPublisher
	now         func() time.Time
	logger      *slog.Logger
}

// GalleryServiceParams holds dependencies for GalleryService, injected by Fx.
type GalleryServiceParams struct {
	fx.In

	GalleryRepo repository.GalleryImageRepository
	Storage     usecase.StorageUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewGalleryService is the constructor for galleryService.
func NewGalleryService(params GalleryServiceParams) usecase.GalleryUsecase {
	return &galleryService{
		galleryRepo: params.GalleryRepo,
		storage:     params.Storage,
		publisher:   params.Publisher,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *galleryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage stores the image and records it under the event. The event ID is a soft
// reference and is not checked.
func (srv *galleryService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*entity.GalleryImage, error) {
	if input == nil || strings.TrimSpace(input.EventID) == "" || input.Image == nil || input.Image.Body == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("eventId and image are required")
	}

	ref, err := srv.storage.Upload(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	image := &entity.GalleryImage{
		ImageFileID: ref.ObjectID,
		ImageURL:    srv.storage.ProxyURL(ref.ObjectID),
		EventID:     input.EventID,
		UploadedAt:  srv.now(),
	}
	if err := srv.galleryRepo.Create(ctx, image); err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(errors.Wrap(err, "failed to record gallery image"))
	}

	srv.log(ctx).Info("Gallery image uploaded",
		slog.String("image_id", image.ID),
		slog.String("event_id", image.EventID),
	)

	publish(ctx, srv.publisher, srv.log(ctx), &service.MediaEvent{
		Type:       service.MediaEventImageUploaded,
		EventID:    image.EventID,
		ImageID:    image.ID,
		ObjectID:   image.ImageFileID,
		ProxyURL:   image.ImageURL,
		OccurredAt: image.UploadedAt,
	})

	return image, nil
}

// ListImages returns the event's images, newest first.
func (srv *galleryService) ListImages(ctx context.Context, eventID string) ([]*entity.GalleryImage, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("eventId is required")
	}

	images, err := srv.galleryRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(errors.Wrap(err, "failed to list gallery images"))
	}

	return images, nil
}
