package main

import (
	"context"
	"log/slog"
	"os"

	"cumple/config"
	"cumple/internal/delivery"
	"cumple/internal/delivery/http"
	"cumple/internal/delivery/http/middleware"
	"cumple/internal/delivery/http/router/handler"
	"cumple/internal/domain/service"
	"cumple/internal/infra/auth"
	"cumple/internal/infra/identity"
	logs "cumple/internal/infra/log"
	"cumple/internal/infra/mail"
	"cumple/internal/infra/media"
	"cumple/internal/infra/persistence/postgres"
	"cumple/internal/infra/pubsub"
	"cumple/internal/infra/qrcode"
	"cumple/internal/usecase/impl"

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
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewEventRepository,
			postgres.NewGuestRepository,
			postgres.NewRegistryRepository,
			postgres.NewSupplierRepository,
			postgres.NewExpenseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			identity.New,
			mail.New,
			media.New,
			newQRCodeService,
		),
	)
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
			impl.NewInvitationService,
			impl.NewEventService,
			impl.NewGuestService,
			impl.NewRegistryService,
			impl.NewContributionService,
			impl.NewSupplierService,
			impl.NewExpenseService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewInviteHandler,
			handler.NewEventHandler,
			handler.NewGuestHandler,
			handler.NewRegistryHandler,
			handler.NewSupplierHandler,
			handler.NewExpenseHandler,
			handler.NewDashboardHandler,
			handler.NewPublicHandler,
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
