package handler

import (
	"net/http"

	"eventdesk/internal/delivery/api/response"
	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GalleryHandlerParams holds dependencies for GalleryHandler, injected by Fx.
type GalleryHandlerParams struct {
	fx.In

	GalleryUC usecase.GalleryUsecase
}

// GalleryHandler holds dependencies for gallery-related handlers
type GalleryHandler struct {
	galleryUC usecase.GalleryUsecase
}

// NewGalleryHandler is the constructor for GalleryHandler
func NewGalleryHandler(params GalleryHandlerParams) *GalleryHandler {
	return &GalleryHandler{
		galleryUC: params.GalleryUC,
	}
}

// UploadImageRequest holds the text fields of the gallery upload form.
type UploadImageRequest struct {
	EventID string `form:"eventId"`
}

// UploadImageResponse is returned once the image is recorded.
type UploadImageResponse struct {
	Success  bool   `json:"success"`
	ImageID  string `json:"imageId"`
	ImageURL string `json:"imageUrl"`
}

// GalleryRequest names the event whose images are listed.
type GalleryRequest struct {
	EventID string `param:"eventId" validate:"required"`
}

// ImagesResponse lists gallery images, newest first.
type ImagesResponse struct {
	Images []*entity.GalleryImage `json:"images"`
}

// UploadImage handles a gallery upload.
func (h *GalleryHandler) UploadImage(c echo.Context) error {
	if err := parseMultipart(c); err != nil {
		return err
	}

	var req UploadImageRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid gallery form")
	}

	image, closer, err := formFile(c, "image")
	if err != nil {
		return err
	}
	defer closer.Close()

	recorded, err := h.galleryUC.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		EventID: req.EventID,
		Image:   image,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, UploadImageResponse{
		Success:  true,
		ImageID:  recorded.ID,
		ImageURL: recorded.ImageURL,
	})
}

// ListImages returns the event's gallery.
func (h *GalleryHandler) ListImages(c echo.Context) error {
	var req GalleryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	images, err := h.galleryUC.ListImages(c.Request().Context(), req.EventID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ImagesResponse{Images: images})
}
