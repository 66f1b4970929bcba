// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// Candidate is a scored, not yet persisted producer-buyer pairing.
type Candidate struct {
	ProducerID             uuid.UUID         `json:"producer_id"`
	BuyerID                uuid.UUID         `json:"buyer_id"`
	Counterpart            PartySummary      `json:"counterpart"`
	MatchScore             int               `json:"match_score"`
	Factors                Factors           `json:"factors"`
	MatchedOfferings       []MatchedOffering `json:"matched_offerings"`
	DistanceKm             float64           `json:"distance_km"`
	DistanceKnown          bool              `json:"distance_known"`
	EstimatedTransportCost float64           `json:"estimated_transport_cost"`
	PotentialRevenue       float64           `json:"potential_revenue"`
}
