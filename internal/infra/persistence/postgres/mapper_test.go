package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"agrimatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestOfferingRepository_SkipsInvalidRows(t *testing.T) {
	logger, buf := newBufferLogger()
	repo := &offeringRepository{logger: logger}
	producerID := uuid.New()
	badID := uuid.New()
	score := 140.0

	offerings := repo.toValidOfferings(context.Background(), []*model.OfferingModel{
		{ID: uuid.New(), ProducerID: producerID, Name: "Maize", Category: "Grains", UnitPrice: 40, AvailableQuantity: 100, Approved: true},
		{ID: badID, ProducerID: producerID, Name: "Beans", Category: "Legumes", UnitPrice: 5, EstimatedYield: -10, Approved: true},
		{ID: uuid.New(), ProducerID: producerID, Name: "Kale", Category: "Vegetables", UnitPrice: -1, Approved: true},
		{ID: uuid.New(), ProducerID: producerID, Name: "Tea", Category: "Beverages", QualityScore: &score, Approved: true},
		{ID: uuid.New(), ProducerID: producerID, Name: "", Category: "Fruits", Approved: true},
	})

	require.Len(t, offerings, 1)
	assert.Equal(t, "Maize", offerings[0].Name)
	assert.Contains(t, buf.String(), "Skipping invalid offering")
	assert.Contains(t, buf.String(), badID.String())
}

func TestPartyRepository_SanitizesPreferences(t *testing.T) {
	logger, buf := newBufferLogger()
	repo := &partyRepository{logger: logger}
	budget := -20.0

	party := repo.toParty(context.Background(), &model.PartyModel{
		ID:     uuid.New(),
		Role:   "buyer",
		Name:   "Fresh Mart",
		Region: "Nairobi",
		Preferences: &model.BuyerPreferenceModel{
			PreferredCategories: datatypes.JSONSlice[string]{"Grains", " "},
			MaxBudget:           &budget,
			DemandForecasts: datatypes.JSONSlice[model.DemandForecastDoc]{
				{Category: "Grains", Quantity: 50, Status: "Active"},
				{Category: "Grains", Quantity: -5},
				{Category: "", Quantity: 10},
				{Category: "Fruits", Quantity: 10, Priority: "Whenever"},
			},
		},
	})

	prefs := party.Preferences
	require.NotNil(t, prefs)
	assert.Equal(t, []string{"Grains"}, prefs.PreferredCategories)
	assert.Nil(t, prefs.MaxBudget)
	require.Len(t, prefs.DemandForecasts, 1)
	assert.Equal(t, 50.0, prefs.DemandForecasts[0].Quantity)
	require.NoError(t, prefs.Validate())
	assert.Contains(t, buf.String(), "dropped=5")
}

func TestPartyRepository_ValidPreferencesAreQuiet(t *testing.T) {
	logger, buf := newBufferLogger()
	repo := &partyRepository{logger: logger}

	party := repo.toParty(context.Background(), &model.PartyModel{
		ID:   uuid.New(),
		Role: "producer",
		Name: "Kamau Farm",
	})

	assert.Nil(t, party.Preferences)
	assert.Empty(t, buf.String())
}
