// Package storage selects the object storage backend named in configuration.
package storage

import (
	"context"
	"log/slog"

	"eventdesk/config"
	"eventdesk/internal/domain/service"
	"eventdesk/internal/infra/storage/bucket"
	"eventdesk/internal/infra/storage/drive"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for ObjectStorageProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Tokens service.AccessTokenSource
}

// NewObjectStorageProvider creates an ObjectStorageProvider based on configuration
func NewObjectStorageProvider(params ProviderParams) (service.ObjectStorageProvider, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("storage is not configured")
	}

	var provider service.ObjectStorageProvider

	switch cfg.Provider {
	case config.StorageProviderDrive:
		logger.Info("Using Google Drive object storage",
			slog.String("folder_id", cfg.FolderID),
		)

		provider = drive.NewProvider(params.Tokens, cfg.FolderID, logger)

	case config.StorageProviderBlob:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for blob provider")
		}
		logger.Info("Using bucket object storage",
			slog.String("bucket_url", cfg.BucketURL),
		)

		bucketProvider, err := bucket.OpenProvider(params.Ctx, cfg.BucketURL, logger)
		if err != nil {
			return nil, err
		}
		provider = bucketProvider

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ObjectStorageProvider")

			return provider.Close()
		},
	})

	return provider, nil
}
