package main

import (
	"context"
	"log/slog"
	"os"

	"agrimatch/config"
	"agrimatch/internal/delivery"
	"agrimatch/internal/delivery/scheduler"
	"agrimatch/internal/delivery/worker"
	"agrimatch/internal/delivery/worker/handler"
	"agrimatch/internal/infra/lock"
	logs "agrimatch/internal/infra/log"
	"agrimatch/internal/infra/metrics"
	"agrimatch/internal/infra/persistence/postgres"
	"agrimatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		lock.Module,
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPairingRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSweeperService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			scheduler.NewSweepScheduler,
		),
	)
}

// startServer also forces construction of the sweep scheduler so its
// lifecycle hooks are registered.
func startServer(ctx context.Context, params startServerParams, _ *scheduler.SweepScheduler) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
