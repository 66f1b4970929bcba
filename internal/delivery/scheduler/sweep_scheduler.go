// Package scheduler runs the periodic expiration sweep inside the worker.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"agrimatch/config"
	deliverycontext "agrimatch/internal/delivery/context"
	"agrimatch/internal/domain/service"
	"agrimatch/internal/errors"
	"agrimatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ErrAlreadyRunning is returned when Start is called twice.
var ErrAlreadyRunning = errors.New("sweep scheduler already running")

// SweepScheduler runs CleanupExpired on a fixed interval. Replicas share a
// lock so only one of them sweeps per tick.
type SweepScheduler struct {
	sweeperUC usecase.SweeperUsecase
	locker    service.Locker
	cfg       *config.SweeperConfig
	logger    *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	stopped chan struct{}
}

// SweepSchedulerParams holds dependencies for the SweepScheduler, injected by Fx.
type SweepSchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	SweeperUC usecase.SweeperUsecase
	Locker    service.Locker
}

// NewSweepScheduler builds the scheduler and binds it to the fx lifecycle
// when the sweeper is enabled.
func NewSweepScheduler(params SweepSchedulerParams) *SweepScheduler {
	s := &SweepScheduler{
		sweeperUC: params.SweeperUC,
		locker:    params.Locker,
		cfg:       params.Config.Sweeper,
		logger:    params.Logger,
	}

	if s.cfg != nil && s.cfg.Enabled {
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return s.Start()
			},
			OnStop: s.Stop,
		})
	}

	return s
}

// Start launches the sweep loop. The first sweep runs immediately.
func (s *SweepScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.cancel = cancel
	s.stopped = make(chan struct{})

	s.logger.Info("Starting sweep scheduler",
		slog.Duration("interval", s.cfg.Interval),
		slog.String("lock_key", s.cfg.LockKey),
	)

	go s.loop(ctx, s.stopped)

	return nil
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *SweepScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return nil
	}
	s.running = false
	s.cancel()
	stopped := s.stopped
	s.mu.Unlock()

	select {
	case <-stopped:
		s.logger.Info("Sweep scheduler stopped")

		return nil
	case <-ctx.Done():
		s.logger.Warn("Sweep scheduler shutdown timed out")

		return errors.WithStack(ctx.Err())
	}
}

func (s *SweepScheduler) loop(ctx context.Context, stopped chan struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single guarded sweep. It reports whether this instance
// held the lock and swept.
func (s *SweepScheduler) RunOnce(ctx context.Context) bool {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	lock, err := s.locker.Acquire(ctx, s.cfg.LockKey, s.cfg.LockTTL)
	if err != nil {
		if errors.Is(err, service.ErrLockNotAcquired) {
			logger.Debug("Sweep skipped, another instance holds the lock")
		} else {
			logger.Error("Failed to acquire sweep lock", slog.Any("error", err))
		}

		return false
	}

	defer func() {
		// Release even when ctx was cancelled by Stop.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := lock.Release(releaseCtx); err != nil {
			logger.Warn("Failed to release sweep lock", slog.Any("error", err))
		}
	}()

	out, err := s.sweeperUC.CleanupExpired(ctx)
	if err != nil {
		logger.Error("Scheduled sweep failed", slog.Any("error", err))

		return true
	}

	logger.Info("Scheduled sweep completed", slog.Int64("deleted", out.Deleted))

	return true
}
