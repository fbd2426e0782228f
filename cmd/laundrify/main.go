package main

import (
	"context"
	"log/slog"
	"os"

	"laundrify/config"
	"laundrify/internal/delivery"
	"laundrify/internal/delivery/http"
	"laundrify/internal/delivery/http/middleware"
	"laundrify/internal/delivery/http/router/handler"
	"laundrify/internal/domain/service"
	"laundrify/internal/infra/availability"
	"laundrify/internal/infra/backend"
	"laundrify/internal/infra/geocode"
	"laundrify/internal/infra/kvstore"
	"laundrify/internal/infra/liveness"
	logs "laundrify/internal/infra/log"
	"laundrify/internal/infra/position"
	"laundrify/internal/infra/qrcode"
	"laundrify/internal/usecase/impl"
	"laundrify/internal/watchdog"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startWatchdog,
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
		),
		kvstore.Module,
		backend.Module,
		geocode.Module,
		availability.Module,
		position.Module,
		liveness.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
			watchdog.New,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.Referral == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.Referral.Size, cfg.Referral.ErrorCorrectionLevel, cfg.Referral.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
			impl.NewLocationService,
			impl.NewReferralService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewIdentityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewLocationHandler,
			handler.NewReferralHandler,
			handler.NewSessionHandler,
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

func startWatchdog(ctx context.Context, wd *watchdog.Watchdog) {
	if wd == nil {
		return
	}

	go wd.Run(ctx)
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
