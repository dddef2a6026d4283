package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "eventdesk/internal/domain/errors"
	mockUsecase "eventdesk/internal/mocks/usecase"
	"eventdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newImageTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockStorageUsecase) {
	storageUC := mockUsecase.NewMockStorageUsecase(t)
	h := NewImageHandler(ImageHandlerParams{
		StorageUC: storageUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho()
	e.GET("/image/:fileId", h.Image)

	return e, storageUC
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true

	return nil
}

func TestImageHandler_Image(t *testing.T) {
	e, storageUC := newImageTestServer(t)
	body := &trackingBody{Reader: strings.NewReader("jpeg-bytes")}

	storageUC.EXPECT().Fetch(mock.Anything, "obj-1").
		Return(&usecase.Object{MimeType: "image/jpeg", Size: 10, Body: body}, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/image/obj-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "10", rec.Header().Get(echo.HeaderContentLength))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
	assert.True(t, body.closed)
}

func TestImageHandler_Image_UnknownSize(t *testing.T) {
	e, storageUC := newImageTestServer(t)

	storageUC.EXPECT().Fetch(mock.Anything, "doc-1").
		Return(&usecase.Object{MimeType: "application/pdf", Size: -1, Body: io.NopCloser(strings.NewReader("%PDF"))}, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/image/doc-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderContentLength))
}

func TestImageHandler_Image_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown object", err: domainerrors.ErrObjectNotFound, wantStatus: http.StatusNotFound},
		{name: "provider failure", err: domainerrors.ErrFetchFailed.WithDetails("backend error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, storageUC := newImageTestServer(t)
			storageUC.EXPECT().Fetch(mock.Anything, "obj-1").Return(nil, tt.err)

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/image/obj-1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Cache-Control"))
		})
	}
}
