package service

import (
	"context"
	"io"

	"eventdesk/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned by storage providers when no object has the requested ID.
var ErrObjectNotFound = errors.New("object not found")

// CreateObjectInput describes a payload to store. Body is streamed, never buffered whole.
type CreateObjectInput struct {
	Name     string
	MimeType string
	Body     io.Reader
}

// ObjectMetadata describes a stored object.
type ObjectMetadata struct {
	ID       string
	Name     string
	MimeType string
	Size     int64 // -1 when the provider does not report a size
}

// ObjectStorageProvider is the external object store holding uploaded binaries
type ObjectStorageProvider interface {
	// Create stores a new object; the provider assigns its ID.
	Create(ctx context.Context, in CreateObjectInput) (*entity.StoredObjectRef, error)

	// GrantPublicRead makes the object readable by anyone holding its link.
	GrantPublicRead(ctx context.Context, objectID string) error

	// Metadata looks up an object's metadata.
	Metadata(ctx context.Context, objectID string) (*ObjectMetadata, error)

	// Open streams an object's content. The stream is bound to ctx.
	Open(ctx context.Context, objectID string) (io.ReadCloser, error)

	// Close releases provider resources.
	Close() error
}

// AccessTokenSource yields a currently valid access token, renewing it when needed
type AccessTokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}
