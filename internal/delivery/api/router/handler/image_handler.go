package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "eventdesk/internal/delivery/context"
	"eventdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerCacheControl = "Cache-Control"
	imageCacheControl  = "public, max-age=86400"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	StorageUC usecase.StorageUsecase
	Logger    *slog.Logger
}

// ImageHandler proxies stored objects to clients.
type ImageHandler struct {
	storageUC usecase.StorageUsecase
	logger    *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		storageUC: params.StorageUC,
		logger:    params.Logger,
	}
}

// ImageRequest names the stored object to stream.
type ImageRequest struct {
	FileID string `param:"fileId" validate:"required"`
}

// Image streams a stored object with its content type and a one-day public cache.
func (h *ImageHandler) Image(c echo.Context) error {
	var req ImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	obj, err := h.storageUC.Fetch(c.Request().Context(), req.FileID)
	if err != nil {
		return err
	}
	defer obj.Body.Close()

	header := c.Response().Header()
	header.Set(headerCacheControl, imageCacheControl)
	if obj.Size >= 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}

	if err := c.Stream(http.StatusOK, obj.MimeType, obj.Body); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Image stream interrupted",
			slog.String("file_id", req.FileID),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}
