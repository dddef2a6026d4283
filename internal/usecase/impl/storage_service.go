package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"

	"eventdesk/config"
	deliverycontext "eventdesk/internal/delivery/context"
	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/domain/service"
	"eventdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMimeType   = "application/octet-stream"
	defaultObjectName = "upload"
	imageRoutePrefix  = "/image/"
)

// storageService implements the StorageUsecase interface.
type storageService struct {
	provider      service.ObjectStorageProvider
	tokens        service.AccessTokenSource
	publicBaseURL string
	timeout       time.Duration
	now           func() time.Time
	logger        *slog.Logger
}

// StorageServiceParams holds dependencies for StorageService, injected by Fx.
type StorageServiceParams struct {
	fx.In

	Provider service.ObjectStorageProvider
	Tokens   service.AccessTokenSource
	Config   *config.Config
	Logger   *slog.Logger
}

// NewStorageService is the constructor for storageService.
func NewStorageService(params StorageServiceParams) usecase.StorageUsecase {
	var timeout time.Duration
	if params.Config.Storage != nil {
		timeout = params.Config.Storage.Timeout
	}

	return &storageService{
		provider:      params.Provider,
		tokens:        params.Tokens,
		publicBaseURL: strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
		timeout:       timeout,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *storageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// withTimeout bounds a storage call by the configured timeout.
func (srv *storageService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if srv.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, srv.timeout)
}

// Upload streams the payload into a new object and grants public read on it. The two
// provider calls are not transactional: when the grant fails the created object is left
// in place and the failure is logged with its ID.
func (srv *storageService) Upload(ctx context.Context, input *usecase.UploadInput) (*entity.StoredObjectRef, error) {
	if input == nil || input.Body == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	// The object store acts on behalf of the signed-in user.
	if _, err := srv.tokens.AccessToken(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := srv.withTimeout(ctx)
	defer cancel()

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	name := storedObjectName(srv.now(), input.SuggestedName)

	ref, err := srv.provider.Create(ctx, service.CreateObjectInput{
		Name:     name,
		MimeType: mimeType,
		Body:     input.Body,
	})
	if err != nil {
		srv.log(ctx).Error("Object upload failed", slog.String("name", name), slog.Any("error", err))

		return nil, uploadError(err)
	}

	if err := srv.provider.GrantPublicRead(ctx, ref.ObjectID); err != nil {
		srv.log(ctx).Error("Object created but public read grant failed",
			slog.String("object_id", ref.ObjectID),
			slog.Any("error", err),
		)

		return nil, uploadError(err)
	}

	srv.log(ctx).Info("Object uploaded",
		slog.String("object_id", ref.ObjectID),
		slog.String("mime_type", ref.MimeType),
	)

	return ref, nil
}

// Fetch looks up the object's metadata, then opens its content. The returned body keeps
// the storage timeout running until it is closed.
func (srv *storageService) Fetch(ctx context.Context, objectID string) (*usecase.Object, error) {
	if strings.TrimSpace(objectID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("object id is required")
	}

	ctx, cancel := srv.withTimeout(ctx)

	meta, err := srv.provider.Metadata(ctx, objectID)
	if err != nil {
		cancel()

		return nil, fetchError(err)
	}

	body, err := srv.provider.Open(ctx, objectID)
	if err != nil {
		cancel()

		return nil, fetchError(err)
	}

	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	return &usecase.Object{
		MimeType: mimeType,
		Size:     meta.Size,
		Body:     &cancelOnClose{ReadCloser: body, cancel: cancel},
	}, nil
}

// ProxyURL returns the URL under which this server streams the object.
func (srv *storageService) ProxyURL(objectID string) string {
	return srv.publicBaseURL + imageRoutePrefix + url.PathEscape(objectID)
}

// cancelOnClose releases the fetch context once the caller is done with the stream.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()

	return c.ReadCloser.Close()
}

// storedObjectName prefixes the sanitised original name with the upload time in unix
// milliseconds.
func storedObjectName(now time.Time, suggested string) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "_" + sanitizeName(suggested)
}

func sanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		name = ""
	}

	sanitized := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			return r
		case unicode.IsSpace(r):
			return '_'
		default:
			return -1
		}
	}, name)

	sanitized = strings.Trim(sanitized, ".")
	if sanitized == "" {
		return defaultObjectName
	}

	return sanitized
}

func uploadError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.ErrUploadFailed.WithCause(err)
}

func fetchError(err error) error {
	if errors.Is(err, service.ErrObjectNotFound) {
		return domainerrors.ErrObjectNotFound.WithCause(err)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.ErrFetchFailed.WithCause(err)
}
