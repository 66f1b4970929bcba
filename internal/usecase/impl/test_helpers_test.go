package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"agrimatch/config"
	"agrimatch/internal/domain/entity"
	mockSvc "agrimatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

// newLenientMetrics accepts any metric call.
func newLenientMetrics(t *testing.T) *mockSvc.MockMatchMetrics {
	m := mockSvc.NewMockMatchMetrics(t)
	m.EXPECT().ObserveGeneration(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.EXPECT().IncPairingsUpserted(mock.Anything).Maybe()
	m.EXPECT().IncResponses(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.EXPECT().AddPairingsSwept(mock.Anything).Maybe()

	return m
}

func newProducer(region string) *entity.Party {
	return &entity.Party{
		ID:           uuid.New(),
		Role:         entity.RoleProducer,
		Name:         "Wanjiru Kamau",
		BusinessName: "Kamau Farm",
		Region:       region,
	}
}

func newBuyer(region string, prefs *entity.BuyerPreferences) *entity.Party {
	return &entity.Party{
		ID:           uuid.New(),
		Role:         entity.RoleBuyer,
		Name:         "Otieno Foods",
		BusinessName: "Otieno Foods Ltd",
		Region:       region,
		Preferences:  prefs,
	}
}

func maizeOffering(producerID uuid.UUID) entity.Offering {
	return entity.Offering{
		ID:                uuid.New(),
		ProducerID:        producerID,
		Name:              "White Maize",
		Category:          "Maize",
		UnitPrice:         40,
		AvailableQuantity: 100,
		Grade:             entity.GradeA,
		Approved:          true,
	}
}

func budget(v float64) *float64 { return &v }
