package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agrimatch/internal/delivery/context"
	"agrimatch/internal/domain/repository"
	"agrimatch/internal/domain/service"
	"agrimatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sweeperService struct {
	pairingRepo repository.PairingRepository
	metrics     service.MatchMetrics
	logger      *slog.Logger
	now         func() time.Time
}

// SweeperServiceParams holds dependencies for SweeperService, injected by Fx.
type SweeperServiceParams struct {
	fx.In

	PairingRepo repository.PairingRepository
	Metrics     service.MatchMetrics
	Logger      *slog.Logger
}

// NewSweeperService creates a new sweeper service instance
func NewSweeperService(params SweeperServiceParams) usecase.SweeperUsecase {
	return &sweeperService{
		pairingRepo: params.PairingRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// CleanupExpired deletes non-terminal pairings past expiresAt. Running it
// repeatedly or concurrently is harmless.
func (s *sweeperService) CleanupExpired(ctx context.Context) (*usecase.SweepOutput, error) {
	now := s.now()

	deleted, err := s.pairingRepo.DeleteExpired(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete expired pairings")
	}

	s.metrics.AddPairingsSwept(deleted)
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Expired pairings swept",
		slog.Int64("deleted", deleted),
		slog.Time("before", now),
	)

	return &usecase.SweepOutput{Deleted: deleted, SweptAt: now}, nil
}
