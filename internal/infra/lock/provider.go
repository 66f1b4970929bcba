package lock

import (
	"context"
	"log/slog"

	"agrimatch/config"
	"agrimatch/internal/domain/lifecycle"
	"agrimatch/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the Locker, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLocker returns a Redis locker when Redis is configured and an in-process
// locker otherwise.
func NewLocker(params Params) service.Locker {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-process locker")

		return NewLocalLocker()
	}

	client := NewClient(cfg)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Redis locker", slog.String("addr", cfg.Addr))

	return NewRedisLocker(client, "", params.Logger)
}

// NewClient builds the Redis client from configuration.
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Module provides the locker FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocker),
)
