// Package bucket stores uploaded binaries in a gocloud.dev bucket (mem://, file://, gs://).
package bucket

import (
	"context"
	"io"
	"log/slog"

	"eventdesk/internal/domain/entity"
	"eventdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted by OpenProvider.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const (
	aclPrefix      = ".acl/"
	aclPublicRead  = "public-read"
	nameMetadata   = "name"
	aclContentType = "text/plain"
)

// Provider implements service.ObjectStorageProvider on a gocloud.dev bucket.
// Object IDs are generated here; a public-read grant is recorded as a sidecar object
// under .acl/ because bucket metadata cannot be changed after a write. Objects without
// a grant are reported as not found by Metadata and Open.
type Provider struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// OpenProvider opens the bucket behind bucketURL.
func OpenProvider(ctx context.Context, bucketURL string, logger *slog.Logger) (*Provider, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewProvider(bucket, logger), nil
}

// NewProvider wraps an already opened bucket.
func NewProvider(bucket *blob.Bucket, logger *slog.Logger) *Provider {
	return &Provider{
		bucket: bucket,
		logger: logger,
	}
}

// Create streams the body into a new object.
func (p *Provider) Create(ctx context.Context, in service.CreateObjectInput) (*entity.StoredObjectRef, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate object id")
	}
	key := id.String()

	// Cancelling the write context before Close discards a partial object.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := p.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: in.MimeType,
		Metadata:    map[string]string{nameMetadata: in.Name},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open object writer")
	}

	if _, err := io.Copy(writer, in.Body); err != nil {
		cancel()
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write object")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to commit object")
	}

	return &entity.StoredObjectRef{ObjectID: key, MimeType: in.MimeType}, nil
}

// GrantPublicRead records that the object is readable by anyone holding its link.
func (p *Provider) GrantPublicRead(ctx context.Context, objectID string) error {
	exists, err := p.bucket.Exists(ctx, objectID)
	if err != nil {
		return errors.Wrap(err, "failed to check object")
	}
	if !exists {
		return service.ErrObjectNotFound
	}

	err = p.bucket.WriteAll(ctx, aclPrefix+objectID, []byte(aclPublicRead), &blob.WriterOptions{
		ContentType: aclContentType,
	})
	if err != nil {
		return errors.Wrap(err, "failed to record public read grant")
	}

	return nil
}

// IsPublic reports whether a public-read grant was recorded for the object.
func (p *Provider) IsPublic(ctx context.Context, objectID string) (bool, error) {
	exists, err := p.bucket.Exists(ctx, aclPrefix+objectID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check public read grant")
	}

	return exists, nil
}

// Metadata looks up the object's attributes.
func (p *Provider) Metadata(ctx context.Context, objectID string) (*service.ObjectMetadata, error) {
	if err := p.requirePublic(ctx, objectID); err != nil {
		return nil, err
	}

	attrs, err := p.bucket.Attributes(ctx, objectID)
	if err != nil {
		return nil, mapError(err, "failed to read object attributes")
	}

	return &service.ObjectMetadata{
		ID:       objectID,
		Name:     attrs.Metadata[nameMetadata],
		MimeType: attrs.ContentType,
		Size:     attrs.Size,
	}, nil
}

// Open streams the object content.
func (p *Provider) Open(ctx context.Context, objectID string) (io.ReadCloser, error) {
	if err := p.requirePublic(ctx, objectID); err != nil {
		return nil, err
	}

	reader, err := p.bucket.NewReader(ctx, objectID, nil)
	if err != nil {
		return nil, mapError(err, "failed to open object")
	}

	return reader, nil
}

// requirePublic hides objects whose upload never completed the grant step.
func (p *Provider) requirePublic(ctx context.Context, objectID string) error {
	public, err := p.IsPublic(ctx, objectID)
	if err != nil {
		return err
	}
	if !public {
		return service.ErrObjectNotFound
	}

	return nil
}

// Close releases the bucket.
func (p *Provider) Close() error {
	return errors.WithStack(p.bucket.Close())
}

func mapError(err error, message string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return service.ErrObjectNotFound
	}

	return errors.Wrap(err, message)
}
