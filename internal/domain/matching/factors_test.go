package matching

import (
	"testing"

	"agrimatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func offering(category string, price, qty float64) entity.Offering {
	return entity.Offering{Name: category, Category: category, UnitPrice: price, AvailableQuantity: qty, Approved: true}
}

func TestProductMatch(t *testing.T) {
	tests := []struct {
		name      string
		offerings []entity.Offering
		prefs     *entity.BuyerPreferences
		want      float64
	}{
		{name: "no preferences", offerings: []entity.Offering{offering("Fruits", 1, 1)}, prefs: nil, want: 50},
		{name: "empty categories", prefs: &entity.BuyerPreferences{}, want: 50},
		{
			name:      "half matched",
			offerings: []entity.Offering{offering("Vegetables", 1, 1)},
			prefs:     &entity.BuyerPreferences{PreferredCategories: []string{"Vegetables", "Grains"}},
			want:      50,
		},
		{
			name:      "case insensitive and deduplicated",
			offerings: []entity.Offering{offering("grains", 1, 1)},
			prefs:     &entity.BuyerPreferences{PreferredCategories: []string{"Grains", "GRAINS"}},
			want:      100,
		},
		{
			name:      "nothing offered",
			offerings: nil,
			prefs:     &entity.BuyerPreferences{PreferredCategories: []string{"Dairy"}},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProductMatch(tt.offerings, tt.prefs), 1e-9)
		})
	}
}

func TestGeographicProximity(t *testing.T) {
	tests := []struct {
		name  string
		km    float64
		known bool
		want  float64
	}{
		{name: "same place", km: 0, known: true, want: 100},
		{name: "half radius", km: 250, known: true, want: 50},
		{name: "at radius", km: 500, known: true, want: 0},
		{name: "beyond radius", km: 900, known: true, want: 0},
		{name: "unknown", km: 0, known: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GeographicProximity(tt.km, tt.known, 500), 1e-9)
		})
	}
}

func TestQualityMatch(t *testing.T) {
	premium := offering("Fruits", 1, 1)
	premium.Grade = entity.GradePremium
	gradeB := offering("Fruits", 1, 1)
	gradeB.Grade = entity.GradeB
	scored := offering("Fruits", 1, 1)
	scored.Grade = entity.GradePremium
	over := 140.0
	scored.QualityScore = &over
	ungraded := offering("Fruits", 1, 1)

	assert.Equal(t, 50.0, QualityMatch(nil))
	assert.Equal(t, 50.0, QualityMatch([]entity.Offering{ungraded}))
	assert.Equal(t, 82.5, QualityMatch([]entity.Offering{premium, gradeB}))
	assert.Equal(t, 75.0, QualityMatch([]entity.Offering{scored, ungraded}))
}

func TestVolumeMatch(t *testing.T) {
	offerings := []entity.Offering{
		offering("Maize", 30, 200),
		offering("Maize", 30, 100),
		{Name: "Beans", Category: "Beans", EstimatedYield: 50},
	}

	tests := []struct {
		name  string
		prefs *entity.BuyerPreferences
		want  float64
	}{
		{name: "no forecasts", prefs: &entity.BuyerPreferences{}, want: 50},
		{
			name: "no matching category",
			prefs: &entity.BuyerPreferences{DemandForecasts: []entity.DemandForecast{
				{Category: "Dairy", Quantity: 10},
			}},
			want: 50,
		},
		{
			name: "summed quantity capped at full",
			prefs: &entity.BuyerPreferences{DemandForecasts: []entity.DemandForecast{
				{Category: "maize", Quantity: 250, Status: entity.ForecastActive},
			}},
			want: 100,
		},
		{
			name: "averaged across matched entries with yield fallback",
			prefs: &entity.BuyerPreferences{DemandForecasts: []entity.DemandForecast{
				{Category: "Maize", Quantity: 600},
				{Category: "Beans", Quantity: 100},
			}},
			want: 50,
		},
		{
			name: "inactive forecasts ignored",
			prefs: &entity.BuyerPreferences{DemandForecasts: []entity.DemandForecast{
				{Category: "Beans", Quantity: 1000, Status: entity.ForecastFulfilled},
			}},
			want: 50,
		},
		{
			name: "zero requested counts as one",
			prefs: &entity.BuyerPreferences{DemandForecasts: []entity.DemandForecast{
				{Category: "Beans", Quantity: 0},
			}},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VolumeMatch(offerings, tt.prefs), 1e-9)
		})
	}
}

func TestHistoricalSuccess(t *testing.T) {
	assert.Equal(t, 50.0, HistoricalSuccess(0))
	assert.Equal(t, 60.0, HistoricalSuccess(1))
	assert.Equal(t, 90.0, HistoricalSuccess(4))
	assert.Equal(t, 100.0, HistoricalSuccess(5))
	assert.Equal(t, 100.0, HistoricalSuccess(12))
}

func TestPriceMatch(t *testing.T) {
	offerings := []entity.Offering{offering("Maize", 40, 1), offering("Beans", 60, 1)}
	budget := func(v float64) *entity.BuyerPreferences {
		return &entity.BuyerPreferences{MaxBudget: &v}
	}

	assert.Equal(t, 50.0, PriceMatch(offerings, nil))
	assert.Equal(t, 50.0, PriceMatch(offerings, &entity.BuyerPreferences{}))
	assert.Equal(t, 100.0, PriceMatch(offerings, budget(50)))
	assert.Equal(t, 100.0, PriceMatch(offerings, budget(80)))
	assert.InDelta(t, 80.0, PriceMatch(offerings, budget(40)), 1e-9)
	assert.Equal(t, 100.0, PriceMatch(nil, budget(10)))
}

func TestPriceMatch_ZeroBudgetIsNoBudget(t *testing.T) {
	offerings := []entity.Offering{offering("Maize", 40, 1)}
	zero := 0.0

	assert.Equal(t, NeutralScore, PriceMatch(offerings, &entity.BuyerPreferences{MaxBudget: &zero}))
}

func TestFactors_AlwaysWithinRange(t *testing.T) {
	negative := -5.0
	prefs := &entity.BuyerPreferences{
		PreferredCategories: []string{"A", "B", "C"},
		MaxBudget:           &negative,
		DemandForecasts:     []entity.DemandForecast{{Category: "A", Quantity: -3}},
	}
	offerings := []entity.Offering{offering("A", 1e9, 1e9), offering("B", 0, 0)}

	for _, v := range []float64{
		ProductMatch(offerings, prefs),
		QualityMatch(offerings),
		VolumeMatch(offerings, prefs),
		PriceMatch(offerings, prefs),
		GeographicProximity(-10, true, 500),
		HistoricalSuccess(1000),
	} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}
