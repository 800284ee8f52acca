package main

import (
	"context"
	"log/slog"
	"os"

	"mapbook/config"
	"mapbook/internal/delivery"
	"mapbook/internal/delivery/api"
	"mapbook/internal/delivery/api/middleware"
	"mapbook/internal/delivery/api/router/handler"
	"mapbook/internal/domain/service"
	"mapbook/internal/infra/auth"
	firebaseinfra "mapbook/internal/infra/firebase"
	logs "mapbook/internal/infra/log"
	"mapbook/internal/infra/persistence"
	"mapbook/internal/infra/pubsub"
	"mapbook/internal/infra/qrcode"
	"mapbook/internal/infra/storage"
	"mapbook/internal/usecase/impl"

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
		persistence.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
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
		firebaseinfra.NewAppProvider,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			storage.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService builds the share code renderer from the qrcode section
func newQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.DeepLinkBase)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVisibilityResolver,
			impl.NewProfileService,
			impl.NewAddressService,
			impl.NewCommentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewCommentHandler,
			handler.NewProfileHandler,
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
