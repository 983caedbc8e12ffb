package main

import (
	"context"
	"log/slog"
	"os"

	"closecart/config"
	"closecart/internal/delivery"
	"closecart/internal/delivery/http"
	"closecart/internal/delivery/http/middleware"
	"closecart/internal/delivery/http/router/handler"
	"closecart/internal/infra/auth"
	"closecart/internal/infra/geocode"
	logs "closecart/internal/infra/log"
	"closecart/internal/infra/metrics"
	"closecart/internal/infra/persistence/postgres"
	"closecart/internal/infra/pubsub"
	"closecart/internal/infra/qrcode"
	"closecart/internal/infra/storage"
	"closecart/internal/usecase/impl"

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
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.New,
			geocode.New,
			storage.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewShopRepository,
			postgres.NewOfferRepository,
			postgres.NewSettingsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewShopService,
			impl.NewOfferService,
			impl.NewSettingsService,
			impl.NewGeocodingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewShopHandler,
			handler.NewOfferHandler,
			handler.NewSettingsHandler,
			handler.NewGeocodingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
