package matching

import (
	"testing"

	"agrimatch/internal/domain/entity"
	"agrimatch/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDistance struct {
	km float64
	ok bool
}

func (d fixedDistance) Distance(string, string) (float64, bool) {
	return d.km, d.ok
}

func ptr[T any](v T) *T {
	return &v
}

var defaultSettings = Settings{MinScore: 40, ProximityRadiusKm: 500, TransportCostPerKm: 50}

func vegetableProducer() (*entity.Party, []entity.Offering) {
	producer := &entity.Party{ID: uuid.New(), Role: entity.RoleProducer, Name: "Wanjiku Farm", Region: "Nairobi"}
	offerings := []entity.Offering{
		{ID: uuid.New(), ProducerID: producer.ID, Name: "Kale", Category: "Vegetables", UnitPrice: 40, AvailableQuantity: 100, Approved: true},
	}

	return producer, offerings
}

func grainsAndVegetablesBuyer() *entity.Party {
	return &entity.Party{
		ID:     uuid.New(),
		Role:   entity.RoleBuyer,
		Name:   "Market Co",
		Region: "Nairobi",
		Preferences: &entity.BuyerPreferences{
			PreferredCategories: []string{"Vegetables", "Grains"},
		},
	}
}

func TestScorer_Evaluate_ReferenceExample(t *testing.T) {
	producer, offerings := vegetableProducer()
	buyer := grainsAndVegetablesBuyer()

	scorer := NewScorer(geo.Kenya(), defaultSettings)
	candidate, ok := scorer.Evaluate(Pair{Producer: producer, Buyer: buyer, Offerings: offerings})

	require.True(t, ok)
	assert.Equal(t, 60, candidate.MatchScore)
	assert.Equal(t, entity.Factors{
		ProductMatch:        50,
		GeographicProximity: 100,
		QualityMatch:        50,
		VolumeMatch:         50,
		HistoricalSuccess:   50,
		PriceMatch:          50,
	}, candidate.Factors)
	assert.True(t, candidate.DistanceKnown)
	assert.Zero(t, candidate.DistanceKm)
	assert.Zero(t, candidate.EstimatedTransportCost)
	require.Len(t, candidate.MatchedOfferings, 1)
	assert.Equal(t, "Kale", candidate.MatchedOfferings[0].Name)
	assert.Equal(t, 4000.0, candidate.PotentialRevenue)
	assert.Equal(t, producer.ID, candidate.ProducerID)
	assert.Equal(t, buyer.ID, candidate.BuyerID)
}

func TestScorer_Evaluate_ThresholdIsStrict(t *testing.T) {
	producer, offerings := vegetableProducer()
	buyer := grainsAndVegetablesBuyer()

	scorer := NewScorer(fixedDistance{km: 600, ok: true}, defaultSettings)
	factors, km, known := scorer.Factors(Pair{Producer: producer, Buyer: buyer, Offerings: offerings})
	assert.Zero(t, factors.GeographicProximity)
	assert.Equal(t, 600.0, km)
	assert.True(t, known)
	assert.Equal(t, 40, Aggregate(factors, DefaultWeights))

	_, ok := scorer.Evaluate(Pair{Producer: producer, Buyer: buyer, Offerings: offerings})
	assert.False(t, ok)
}

func TestScorer_Evaluate_UnknownDistanceIsWorstCase(t *testing.T) {
	producer, offerings := vegetableProducer()
	producer.Region = "Atlantis"
	buyer := grainsAndVegetablesBuyer()

	scorer := NewScorer(geo.Kenya(), defaultSettings)
	factors, km, known := scorer.Factors(Pair{Producer: producer, Buyer: buyer, Offerings: offerings})

	assert.False(t, known)
	assert.Zero(t, km)
	assert.Zero(t, factors.GeographicProximity)
}

func TestScorer_Evaluate_TransportCost(t *testing.T) {
	producer, offerings := vegetableProducer()
	buyer := grainsAndVegetablesBuyer()
	buyer.Preferences.PreferredCategories = []string{"vegetables"}
	buyer.Preferences.MaxBudget = ptr(100.0)

	scorer := NewScorer(fixedDistance{km: 12.34, ok: true}, defaultSettings)
	candidate, ok := scorer.Evaluate(Pair{Producer: producer, Buyer: buyer, Offerings: offerings, CompletedOrders: 2})

	require.True(t, ok)
	assert.Equal(t, 617.0, candidate.EstimatedTransportCost)
	assert.Equal(t, 12.34, candidate.DistanceKm)
	assert.Equal(t, 100.0, candidate.Factors.ProductMatch)
	assert.Equal(t, 70.0, candidate.Factors.HistoricalSuccess)
	assert.Equal(t, 100.0, candidate.Factors.PriceMatch)
}

func TestAggregate_StaysInRange(t *testing.T) {
	assert.Equal(t, 0, Aggregate(entity.Factors{}, DefaultWeights))
	assert.Equal(t, 100, Aggregate(entity.Factors{
		ProductMatch: 100, GeographicProximity: 100, QualityMatch: 100,
		VolumeMatch: 100, HistoricalSuccess: 100, PriceMatch: 100,
	}, DefaultWeights))
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	w := DefaultWeights
	sum := w.ProductMatch + w.GeographicProximity + w.QualityMatch + w.VolumeMatch + w.HistoricalSuccess + w.PriceMatch
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestRank_SortsDescendingAndKeepsTies(t *testing.T) {
	a := entity.Candidate{BuyerID: uuid.New(), MatchScore: 55}
	b := entity.Candidate{BuyerID: uuid.New(), MatchScore: 80}
	c := entity.Candidate{BuyerID: uuid.New(), MatchScore: 55}
	candidates := []entity.Candidate{a, b, c}

	Rank(candidates)

	assert.Equal(t, []entity.Candidate{b, a, c}, candidates)
}
