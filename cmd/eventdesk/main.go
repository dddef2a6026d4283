package main

import (
	"context"
	"log/slog"
	"os"

	"eventdesk/config"
	"eventdesk/internal/delivery"
	"eventdesk/internal/delivery/api"
	"eventdesk/internal/delivery/api/router/handler"
	"eventdesk/internal/domain/service"
	"eventdesk/internal/infra/auth/google"
	logs "eventdesk/internal/infra/log"
	"eventdesk/internal/infra/persistence/memory"
	"eventdesk/internal/infra/pubsub"
	"eventdesk/internal/infra/qrcode"
	"eventdesk/internal/infra/storage"
	"eventdesk/internal/usecase"
	"eventdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewTokenStore,
			memory.NewEventRepository,
			memory.NewGalleryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			google.NewOAuthProvider,
			newAccessTokenSource,
			storage.NewObjectStorageProvider,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newAccessTokenSource lets the storage providers authorise calls with the signed-in
// user's access token.
func newAccessTokenSource(authUC usecase.AuthUsecase) service.AccessTokenSource {
	return authUC
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStorageService,
			impl.NewEventService,
			impl.NewGalleryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewEventHandler,
			handler.NewGalleryHandler,
			handler.NewImageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
