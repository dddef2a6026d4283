package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"eventdesk/config"
	deliverycontext "eventdesk/internal/delivery/context"
	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/domain/repository"
	"eventdesk/internal/domain/service"
	"eventdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const eventRoutePrefix = "/get-event/"

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo     repository.EventRepository
	storage       usecase.StorageUsecase
	qrCodes       service.QRCodeService
	publisher     service.EventPublisher
	publicBaseURL string
	now           func() time.Time
	logger        *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Storage   usecase.StorageUsecase
	QRCodes   service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:     params.EventRepo,
		storage:       params.Storage,
		qrCodes:       params.QRCodes,
		publisher:     params.Publisher,
		publicBaseURL: strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent uploads the thumbnail, then records the event pointing at it.
func (srv *eventService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("eventName, userId and thumbnail are required")
	}

	var missing []string
	if strings.TrimSpace(input.EventName) == "" {
		missing = append(missing, "eventName")
	}
	if strings.TrimSpace(input.UserID) == "" {
		missing = append(missing, "userId")
	}
	if input.Thumbnail == nil || input.Thumbnail.Body == nil {
		missing = append(missing, "thumbnail")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	ref, err := srv.storage.Upload(ctx, input.Thumbnail)
	if err != nil {
		return nil, err
	}

	event := &entity.Event{
		EventName:       input.EventName,
		ThumbnailFileID: ref.ObjectID,
		ThumbnailURL:    srv.storage.ProxyURL(ref.ObjectID),
		UserID:          input.UserID,
		CreatedAt:       srv.now(),
	}
	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(errors.Wrap(err, "failed to record event"))
	}

	srv.log(ctx).Info("Event created",
		slog.String("event_id", event.ID),
		slog.String("user_id", event.UserID),
		slog.String("thumbnail_file_id", event.ThumbnailFileID),
	)

	publish(ctx, srv.publisher, srv.log(ctx), &service.MediaEvent{
		Type:       service.MediaEventCreated,
		EventID:    event.ID,
		UserID:     event.UserID,
		ObjectID:   event.ThumbnailFileID,
		ProxyURL:   event.ThumbnailURL,
		OccurredAt: event.CreatedAt,
	})

	return event, nil
}

// ListEvents returns the owner's events, newest first.
func (srv *eventService) ListEvents(ctx context.Context, userID string) ([]*entity.Event, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	events, err := srv.eventRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(errors.Wrap(err, "failed to list events"))
	}

	return events, nil
}

// GetEvent retrieves a single event.
func (srv *eventService) GetEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("eventId is required")
	}

	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return nil, domainerrors.ErrEventNotFound.WithCause(err)
	}
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(errors.Wrap(err, "failed to find event"))
	}

	return event, nil
}

// ShareQRCode renders a PNG QR code carrying the event's link.
func (srv *eventService) ShareQRCode(ctx context.Context, eventID string) ([]byte, error) {
	event, err := srv.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	link := srv.publicBaseURL + eventRoutePrefix + url.PathEscape(event.ID)
	png, err := srv.qrCodes.GenerateShareQR(event.ID, link)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(errors.Wrap(err, "failed to render share code"))
	}

	return png, nil
}

// publish announces a media event. Delivery failures are logged and never fail the
// request that produced the event.
func publish(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MediaEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := publisher.PublishMediaEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish media event",
			slog.String("type", event.Type),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
