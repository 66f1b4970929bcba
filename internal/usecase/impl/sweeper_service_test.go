package impl

import (
	"context"
	"testing"

	mockRepo "agrimatch/internal/mocks/repository"
	mockSvc "agrimatch/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeperService_CleanupExpired(t *testing.T) {
	repo := mockRepo.NewMockPairingRepository(t)
	metrics := mockSvc.NewMockMatchMetrics(t)
	svc := NewSweeperService(SweeperServiceParams{
		PairingRepo: repo,
		Metrics:     metrics,
		Logger:      newDiscardLogger(),
	}).(*sweeperService)
	svc.now = fixedClock()
	ctx := context.Background()

	repo.EXPECT().DeleteExpired(ctx, testNow).Return(7, nil).Once()
	repo.EXPECT().DeleteExpired(ctx, testNow).Return(0, nil).Once()
	metrics.EXPECT().AddPairingsSwept(int64(7)).Once()
	metrics.EXPECT().AddPairingsSwept(int64(0)).Once()

	out, err := svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Deleted)
	assert.Equal(t, testNow, out.SweptAt)

	out, err = svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, out.Deleted)
}

func TestSweeperService_CleanupExpired_Error(t *testing.T) {
	repo := mockRepo.NewMockPairingRepository(t)
	svc := NewSweeperService(SweeperServiceParams{
		PairingRepo: repo,
		Metrics:     mockSvc.NewMockMatchMetrics(t),
		Logger:      newDiscardLogger(),
	}).(*sweeperService)
	svc.now = fixedClock()

	repo.EXPECT().DeleteExpired(context.Background(), testNow).Return(0, errors.New("timeout"))

	out, err := svc.CleanupExpired(context.Background())
	assert.Nil(t, out)
	assert.ErrorContains(t, err, "failed to delete expired pairings")
}
