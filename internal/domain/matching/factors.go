// Package matching scores producer-buyer compatibility.
package matching

import (
	"math"

	"agrimatch/internal/domain/entity"
)

// NeutralScore is returned by a factor when there is nothing to compare.
const NeutralScore = 50.0

// ProductMatch is the share of the buyer's preferred categories that the
// producer offers.
func ProductMatch(offerings []entity.Offering, prefs *entity.BuyerPreferences) float64 {
	wanted := prefs.Categories()
	if len(wanted) == 0 {
		return NeutralScore
	}

	offered := offeredCategories(offerings)
	matched := 0
	for _, c := range wanted {
		if _, ok := offered[entity.NormalizeCategory(c)]; ok {
			matched++
		}
	}

	return clamp(float64(matched) / float64(len(wanted)) * 100)
}

// GeographicProximity decays linearly from 100 at 0 km to 0 at radiusKm.
// An unknown distance scores 0.
func GeographicProximity(distanceKm float64, known bool, radiusKm float64) float64 {
	if !known || radiusKm <= 0 {
		return 0
	}
	if distanceKm >= radiusKm {
		return 0
	}

	return clamp(100 * (1 - distanceKm/radiusKm))
}

// QualityMatch averages the quality scores of the producer's offerings.
func QualityMatch(offerings []entity.Offering) float64 {
	if len(offerings) == 0 {
		return NeutralScore
	}

	var sum float64
	for _, o := range offerings {
		sum += o.Quality()
	}

	return clamp(sum / float64(len(offerings)))
}

// VolumeMatch averages, over active demand entries the producer can serve,
// how much of the requested quantity the producer has available.
func VolumeMatch(offerings []entity.Offering, prefs *entity.BuyerPreferences) float64 {
	forecasts := prefs.ActiveForecasts()
	if len(forecasts) == 0 {
		return NeutralScore
	}

	available := make(map[string]float64)
	for _, o := range offerings {
		available[entity.NormalizeCategory(o.Category)] += o.Quantity()
	}

	var (
		sum     float64
		matched int
	)
	for _, f := range forecasts {
		qty, ok := available[entity.NormalizeCategory(f.Category)]
		if !ok {
			continue
		}
		requested := f.Quantity
		if requested <= 0 {
			requested = 1
		}
		sum += math.Min(qty/requested, 1)
		matched++
	}
	if matched == 0 {
		return NeutralScore
	}

	return clamp(sum / float64(matched) * 100)
}

// HistoricalSuccess rewards prior completed orders between the pair.
func HistoricalSuccess(completedOrders int) float64 {
	if completedOrders <= 0 {
		return NeutralScore
	}

	return math.Min(100, NeutralScore+10*float64(completedOrders))
}

// PriceMatch compares the producer's average price with the buyer's budget
// ceiling. A zero budget counts as no budget.
func PriceMatch(offerings []entity.Offering, prefs *entity.BuyerPreferences) float64 {
	if prefs == nil || prefs.MaxBudget == nil || *prefs.MaxBudget <= 0 {
		return NeutralScore
	}

	avg := averagePrice(offerings)
	budget := *prefs.MaxBudget
	if avg <= 0 || avg <= budget {
		return 100
	}

	return clamp(budget / avg * 100)
}

func offeredCategories(offerings []entity.Offering) map[string]struct{} {
	out := make(map[string]struct{}, len(offerings))
	for _, o := range offerings {
		if key := entity.NormalizeCategory(o.Category); key != "" {
			out[key] = struct{}{}
		}
	}

	return out
}

func averagePrice(offerings []entity.Offering) float64 {
	if len(offerings) == 0 {
		return 0
	}

	var sum float64
	for _, o := range offerings {
		sum += o.UnitPrice
	}

	return sum / float64(len(offerings))
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
