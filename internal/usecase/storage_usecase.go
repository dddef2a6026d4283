package usecase

import (
	"context"
	"io"

	"eventdesk/internal/domain/entity"
)

// UploadInput carries a payload to store. Body is read once, as a stream.
type UploadInput struct {
	Body          io.Reader
	MimeType      string
	SuggestedName string
}

// Object is a stored object being streamed back. The caller must close Body.
type Object struct {
	MimeType string
	Size     int64 // -1 when unknown
	Body     io.ReadCloser
}

// StorageUsecase moves binaries between clients and the object store and hands out
// proxy URLs so clients never talk to the store directly.
type StorageUsecase interface {
	// Upload stores the payload and makes it publicly readable.
	Upload(ctx context.Context, input *UploadInput) (*entity.StoredObjectRef, error)

	// Fetch opens a stored object for streaming.
	Fetch(ctx context.Context, objectID string) (*Object, error)

	// ProxyURL returns the URL under which this server serves the object.
	ProxyURL(objectID string) string
}
