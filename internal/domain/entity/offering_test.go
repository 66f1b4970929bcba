package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffering_Quality(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		offering Offering
		want     float64
	}{
		{name: "explicit score wins", offering: Offering{Grade: GradePremium, QualityScore: score(72)}, want: 72},
		{name: "explicit score clamped", offering: Offering{QualityScore: score(140)}, want: 100},
		{name: "grade A", offering: Offering{Grade: GradeA}, want: 80},
		{name: "below standard", offering: Offering{Grade: GradeBelowStandard}, want: 30},
		{name: "unknown grade", offering: Offering{Grade: "Organic"}, want: DefaultQualityScore},
		{name: "nothing set", offering: Offering{}, want: DefaultQualityScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.offering.Quality(), 1e-9)
		})
	}
}

func TestOffering_QuantityFallsBackToYield(t *testing.T) {
	assert.InDelta(t, 40, Offering{AvailableQuantity: 40, EstimatedYield: 90}.Quantity(), 0)
	assert.InDelta(t, 90, Offering{EstimatedYield: 90}.Quantity(), 0)

	snap := Offering{Name: "Tomatoes", Category: "Vegetables", UnitPrice: 35, EstimatedYield: 90}.Snapshot()
	assert.Equal(t, "Tomatoes", snap.Name)
	assert.InDelta(t, 90, snap.Quantity, 0)
	assert.InDelta(t, 35, snap.Price, 0)
}
