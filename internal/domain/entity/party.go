// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ForecastStatus is the lifecycle state of a buyer demand forecast entry.
type ForecastStatus string

const (
	ForecastActive    ForecastStatus = "Active"
	ForecastFulfilled ForecastStatus = "Fulfilled"
	ForecastCancelled ForecastStatus = "Cancelled"
)

// Party is a producer or buyer as seen by the matching engine. It is owned by
// the profile subsystem and only read here.
type Party struct {
	ID           uuid.UUID         `json:"id"`
	Role         Role              `json:"role"`
	Name         string            `json:"name"`
	BusinessName string            `json:"business_name,omitempty"` // Farm or company name
	Region       string            `json:"region"`                  // County or administrative area
	Preferences  *BuyerPreferences `json:"preferences,omitempty"`   // Buyers only
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Summary returns the public view of the party shown alongside pairings.
func (p *Party) Summary() PartySummary {
	return PartySummary{
		ID:           p.ID,
		Role:         p.Role,
		Name:         p.Name,
		BusinessName: p.BusinessName,
		Region:       p.Region,
	}
}

// PartySummary is the counterpart information attached to candidates and details.
type PartySummary struct {
	ID           uuid.UUID `json:"id"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name,omitempty"`
	Region       string    `json:"region"`
}

// BuyerPreferences holds what a buyer is looking for. Absent fields carry
// neutral defaults in scoring: no categories, no budget, no forecasts.
type BuyerPreferences struct {
	PreferredCategories []string         `json:"preferred_categories" validate:"dive,required"`
	MaxBudget           *float64         `json:"max_budget,omitempty" validate:"omitempty,gte=0"`
	DemandForecasts     []DemandForecast `json:"demand_forecasts,omitempty" validate:"dive"`
}

// HasCategories reports whether the buyer stated at least one preferred category.
func (p *BuyerPreferences) HasCategories() bool {
	if p == nil {
		return false
	}
	for _, c := range p.PreferredCategories {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}

	return false
}

// Categories returns the distinct preferred categories, compared case-insensitively.
// The first spelling seen wins.
func (p *BuyerPreferences) Categories() []string {
	if p == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(p.PreferredCategories))
	out := make([]string, 0, len(p.PreferredCategories))
	for _, c := range p.PreferredCategories {
		key := NormalizeCategory(c)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(c))
	}

	return out
}

// ActiveForecasts returns the demand entries still open.
func (p *BuyerPreferences) ActiveForecasts() []DemandForecast {
	if p == nil {
		return nil
	}

	out := make([]DemandForecast, 0, len(p.DemandForecasts))
	for _, f := range p.DemandForecasts {
		if f.IsActive() {
			out = append(out, f)
		}
	}

	return out
}

// DemandForecast is a buyer's expected need for one category.
type DemandForecast struct {
	Category string         `json:"category" validate:"required"`
	Quantity float64        `json:"quantity" validate:"gte=0"`
	Deadline *time.Time     `json:"deadline,omitempty"`
	Priority string         `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High Urgent"`
	Status   ForecastStatus `json:"status,omitempty" validate:"omitempty,oneof=Active Fulfilled Cancelled"`
}

// IsActive reports whether the forecast still participates in matching.
// Entries without a status are treated as active.
func (f DemandForecast) IsActive() bool {
	return f.Status == "" || f.Status == ForecastActive
}

// NormalizeCategory is the comparison key for product categories.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
