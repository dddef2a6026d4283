package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	mockUsecase "eventdesk/internal/mocks/usecase"
	"eventdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGalleryTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockGalleryUsecase) {
	galleryUC := mockUsecase.NewMockGalleryUsecase(t)
	h := NewGalleryHandler(GalleryHandlerParams{GalleryUC: galleryUC})

	e := newTestEcho()
	e.POST("/gallery/upload", h.UploadImage)
	e.GET("/gallery/:eventId", h.ListImages)

	return e, galleryUC
}

func TestGalleryHandler_UploadImage(t *testing.T) {
	e, galleryUC := newGalleryTestServer(t)

	galleryUC.EXPECT().
		UploadImage(mock.Anything, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
			return in.EventID == "evt-1" && in.Image != nil && in.Image.MimeType == "image/jpeg"
		})).
		Return(&entity.GalleryImage{ID: "img-1", ImageURL: "http://localhost:8080/image/obj-9"}, nil)

	req := newMultipartRequest(t, "/gallery/upload",
		map[string]string{"eventId": "evt-1"},
		&formFilePart{field: "image", filename: "IMG_0001.jpg", contentType: "image/jpeg", content: []byte("jpeg")},
	)
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"imageId":"img-1","imageUrl":"http://localhost:8080/image/obj-9"}`, rec.Body.String())
}

func TestGalleryHandler_UploadImage_NotMultipart(t *testing.T) {
	e, galleryUC := newGalleryTestServer(t)

	galleryUC.EXPECT().
		UploadImage(mock.Anything, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
			return in.EventID == "" && in.Image == nil
		})).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("eventId and image are required"))

	req := httptest.NewRequest(http.MethodPost, "/gallery/upload", nil)
	rec := serve(e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGalleryHandler_ListImages(t *testing.T) {
	e, galleryUC := newGalleryTestServer(t)
	galleryUC.EXPECT().ListImages(mock.Anything, "evt-1").Return([]*entity.GalleryImage{
		{ID: "img-2", EventID: "evt-1"},
		{ID: "img-1", EventID: "evt-1"},
	}, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/gallery/evt-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body ImagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Images, 2)
	assert.Equal(t, "img-2", body.Images[0].ID)
}
