package usecase

import (
	"context"
	"time"
)

// SweepOutput reports one expiration sweep.
type SweepOutput struct {
	Deleted int64
	SweptAt time.Time
}

// SweeperUsecase removes pairings that expired before reaching a terminal state.
type SweeperUsecase interface {
	CleanupExpired(ctx context.Context) (*SweepOutput, error)
}
