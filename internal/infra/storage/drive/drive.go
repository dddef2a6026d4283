// Package drive stores uploaded binaries in Google Drive on behalf of the signed-in user.
package drive

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"eventdesk/internal/domain/entity"
	"eventdesk/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	permissionRoleReader = "reader"
	permissionTypeAnyone = "anyone"
	googleAppsMimePrefix = "application/vnd.google-apps."
)

// Provider implements service.ObjectStorageProvider on the Drive v3 API. Every call is
// authorised with the access token current at the time of the call.
type Provider struct {
	tokens   service.AccessTokenSource
	folderID string
	opts     []option.ClientOption
	logger   *slog.Logger
}

// NewProvider creates a Drive storage provider. Uploads land in folderID when it is set.
// opts are appended to every Drive client, e.g. option.WithEndpoint for tests.
func NewProvider(tokens service.AccessTokenSource, folderID string, logger *slog.Logger, opts ...option.ClientOption) *Provider {
	return &Provider{
		tokens:   tokens,
		folderID: folderID,
		opts:     opts,
		logger:   logger,
	}
}

// Create uploads the body as a new Drive file; Drive assigns the ID.
func (p *Provider) Create(ctx context.Context, in service.CreateObjectInput) (*entity.StoredObjectRef, error) {
	srv, err := p.service(ctx)
	if err != nil {
		return nil, err
	}

	file := &drive.File{
		Name:     in.Name,
		MimeType: in.MimeType,
	}
	if p.folderID != "" {
		file.Parents = []string{p.folderID}
	}

	// ChunkSize(0) sends one multipart request fed straight from the body; any other
	// chunk size makes the client buffer a whole chunk in memory first.
	created, err := srv.Files.Create(file).
		Media(in.Body, googleapi.ContentType(in.MimeType), googleapi.ChunkSize(0)).
		Fields("id", "mimeType").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create drive file")
	}

	mimeType := created.MimeType
	if mimeType == "" {
		mimeType = in.MimeType
	}

	return &entity.StoredObjectRef{ObjectID: created.Id, MimeType: mimeType}, nil
}

// GrantPublicRead lets anyone holding the link read the file.
func (p *Provider) GrantPublicRead(ctx context.Context, objectID string) error {
	srv, err := p.service(ctx)
	if err != nil {
		return err
	}

	_, err = srv.Permissions.Create(objectID, &drive.Permission{
		Role: permissionRoleReader,
		Type: permissionTypeAnyone,
	}).Context(ctx).Do()
	if err != nil {
		return mapError(err, "failed to grant public read on drive file")
	}

	return nil
}

// Metadata looks up the file's name, mime type and size.
func (p *Provider) Metadata(ctx context.Context, objectID string) (*service.ObjectMetadata, error) {
	srv, err := p.service(ctx)
	if err != nil {
		return nil, err
	}

	file, err := srv.Files.Get(objectID).
		Fields("id", "name", "mimeType", "size").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError(err, "failed to get drive file metadata")
	}

	size := file.Size
	if strings.HasPrefix(file.MimeType, googleAppsMimePrefix) {
		// Drive reports no size for Google-native documents.
		size = -1
	}

	return &service.ObjectMetadata{
		ID:       file.Id,
		Name:     file.Name,
		MimeType: file.MimeType,
		Size:     size,
	}, nil
}

// Open streams the file content. The returned body lives as long as ctx.
func (p *Provider) Open(ctx context.Context, objectID string) (io.ReadCloser, error) {
	srv, err := p.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Files.Get(objectID).Context(ctx).Download()
	if err != nil {
		return nil, mapError(err, "failed to download drive file")
	}

	return resp.Body, nil
}

// Close is a no-op; Drive clients are built per call.
func (p *Provider) Close() error {
	return nil
}

func (p *Provider) service(ctx context.Context) (*drive.Service, error) {
	client := oauth2.NewClient(ctx, &tokenSource{ctx: ctx, tokens: p.tokens})

	opts := append([]option.ClientOption{option.WithHTTPClient(client)}, p.opts...)
	srv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create drive client")
	}

	return srv, nil
}

// tokenSource adapts the credential store's access tokens to oauth2.TokenSource.
type tokenSource struct {
	ctx    context.Context
	tokens service.AccessTokenSource
}

func (ts *tokenSource) Token() (*oauth2.Token, error) {
	accessToken, err := ts.tokens.AccessToken(ts.ctx)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}, nil
}

func mapError(err error, message string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return service.ErrObjectNotFound
	}

	return errors.Wrap(err, message)
}
