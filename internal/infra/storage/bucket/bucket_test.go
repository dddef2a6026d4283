package bucket

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"eventdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemProvider(t *testing.T) *Provider {
	t.Helper()

	provider, err := OpenProvider(context.Background(), "mem://", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })

	return provider
}

func TestProvider_RoundTrip(t *testing.T) {
	provider := newMemProvider(t)
	ctx := context.Background()
	payload := bytes.Repeat([]byte{0x00, 0xff, 0x10, 'j', 'p', 'g'}, 64*1024)

	ref, err := provider.Create(ctx, service.CreateObjectInput{
		Name:     "1714564800000_photo.jpg",
		MimeType: "image/jpeg",
		Body:     bytes.NewReader(payload),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ref.MimeType)

	require.NoError(t, provider.GrantPublicRead(ctx, ref.ObjectID))
	public, err := provider.IsPublic(ctx, ref.ObjectID)
	require.NoError(t, err)
	assert.True(t, public)

	meta, err := provider.Metadata(ctx, ref.ObjectID)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", meta.MimeType)
	assert.Equal(t, int64(len(payload)), meta.Size)
	assert.Equal(t, "1714564800000_photo.jpg", meta.Name)

	body, err := provider.Open(ctx, ref.ObjectID)
	require.NoError(t, err)
	defer body.Close()

	got, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, got), "content differs from upload")
}

func TestProvider_NotFound(t *testing.T) {
	provider := newMemProvider(t)
	ctx := context.Background()

	_, err := provider.Metadata(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)

	_, err = provider.Open(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)

	assert.ErrorIs(t, provider.GrantPublicRead(ctx, "missing"), service.ErrObjectNotFound)
}

func TestProvider_UngrantedObjectIsNotServed(t *testing.T) {
	provider := newMemProvider(t)
	ctx := context.Background()

	ref, err := provider.Create(ctx, service.CreateObjectInput{
		Name:     "1714564800000_draft.png",
		MimeType: "image/png",
		Body:     strings.NewReader("draft"),
	})
	require.NoError(t, err)

	// Created but never granted: the object exists, readers cannot see it.
	exists, err := provider.bucket.Exists(ctx, ref.ObjectID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = provider.Metadata(ctx, ref.ObjectID)
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
	_, err = provider.Open(ctx, ref.ObjectID)
	assert.ErrorIs(t, err, service.ErrObjectNotFound)

	require.NoError(t, provider.GrantPublicRead(ctx, ref.ObjectID))

	body, err := provider.Open(ctx, ref.ObjectID)
	require.NoError(t, err)
	defer body.Close()
	got, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "draft", string(got))
}

func TestProvider_FailedBodyLeavesNoObject(t *testing.T) {
	provider := newMemProvider(t)
	ctx := context.Background()

	body := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(errors.New("client went away")))
	_, err := provider.Create(ctx, service.CreateObjectInput{Name: "broken.png", MimeType: "image/png", Body: body})
	require.Error(t, err)

	iter := provider.bucket.List(nil)
	obj, err := iter.Next(ctx)
	assert.Nil(t, obj)
	assert.ErrorIs(t, err, io.EOF)
}
