package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// multipartMemory is how much of a multipart body is held in memory; larger file parts
// are spooled to temporary files and streamed from there.
const multipartMemory = 1 << 20

// parseMultipart reads the form of a multipart request. A request that is not multipart
// parses to an empty form so the missing fields are reported by validation.
func parseMultipart(c echo.Context) error {
	err := c.Request().ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	return domainerrors.ErrValidationFailed.WithDetails("invalid multipart form: " + err.Error())
}

// formFile opens the named file part. A missing part yields a nil input and a no-op
// closer.
func formFile(c echo.Context, field string) (*usecase.UploadInput, io.Closer, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, io.NopCloser(nil), nil
	}
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("invalid file field " + field)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open uploaded %s", field)
	}

	return &usecase.UploadInput{
		Body:          file,
		MimeType:      partContentType(header),
		SuggestedName: header.Filename,
	}, file, nil
}

func partContentType(header *multipart.FileHeader) string {
	return header.Header.Get(echo.HeaderContentType)
}
