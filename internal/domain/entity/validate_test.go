package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffering_Validate(t *testing.T) {
	score := 101.0
	tests := []struct {
		name     string
		offering Offering
		wantErr  bool
	}{
		{name: "valid", offering: Offering{Name: "Maize", Category: "Grains", UnitPrice: 40, AvailableQuantity: 10}},
		{name: "negative yield", offering: Offering{Name: "Beans", Category: "Legumes", UnitPrice: 5, EstimatedYield: -10}, wantErr: true},
		{name: "negative price", offering: Offering{Name: "Kale", Category: "Vegetables", UnitPrice: -1}, wantErr: true},
		{name: "score above range", offering: Offering{Name: "Tea", Category: "Beverages", QualityScore: &score}, wantErr: true},
		{name: "missing category", offering: Offering{Name: "Tea"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.offering.Validate()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBuyerPreferences_Sanitize(t *testing.T) {
	budget := -1.0
	prefs := &BuyerPreferences{
		PreferredCategories: []string{"Fruits", ""},
		MaxBudget:           &budget,
		DemandForecasts: []DemandForecast{
			{Category: "Fruits", Quantity: 20, Priority: "High"},
			{Category: "Fruits", Quantity: 20, Status: "Lost"},
		},
	}
	assert.Error(t, prefs.Validate())

	assert.Equal(t, 3, prefs.Sanitize())
	assert.NoError(t, prefs.Validate())
	assert.Equal(t, []string{"Fruits"}, prefs.PreferredCategories)
	assert.Nil(t, prefs.MaxBudget)
	assert.Len(t, prefs.DemandForecasts, 1)

	assert.Zero(t, prefs.Sanitize())

	var none *BuyerPreferences
	assert.NoError(t, none.Validate())
	assert.Zero(t, none.Sanitize())
}
