// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PairingStatus is the overall state of a pairing derived from both responses.
type PairingStatus string

const (
	StatusPending            PairingStatus = "pending"
	StatusAcceptedByProducer PairingStatus = "accepted_by_producer"
	StatusAcceptedByBuyer    PairingStatus = "accepted_by_buyer"
	StatusBothAccepted       PairingStatus = "both_accepted"
	StatusRejected           PairingStatus = "rejected"
)

// String returns the string representation of the PairingStatus.
func (s PairingStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further response-driven transition is possible.
func (s PairingStatus) IsTerminal() bool {
	return s == StatusBothAccepted || s == StatusRejected
}

// NonTerminalStatuses lists the states removed by the expiration sweep.
func NonTerminalStatuses() []PairingStatus {
	return []PairingStatus{StatusPending, StatusAcceptedByProducer, StatusAcceptedByBuyer}
}

// Response is one side's decision on a pairing.
type Response string

const (
	ResponsePending  Response = "pending"
	ResponseAccepted Response = "accepted"
	ResponseRejected Response = "rejected"
)

// IsDecision reports whether the response is a valid accept/reject decision.
func (r Response) IsDecision() bool {
	return r == ResponseAccepted || r == ResponseRejected
}

// Side identifies which party of a pairing is acting.
type Side string

const (
	SideProducer Side = "producer"
	SideBuyer    Side = "buyer"
)

// IsValid checks if the Side is a valid value.
func (s Side) IsValid() bool {
	return s == SideProducer || s == SideBuyer
}

// Role returns the caller role that acts on this side.
func (s Side) Role() Role {
	if s == SideBuyer {
		return RoleBuyer
	}

	return RoleProducer
}

// Factors are the six 0-100 compatibility sub-scores of a pairing.
type Factors struct {
	ProductMatch        float64 `json:"product_match"`
	GeographicProximity float64 `json:"geographic_proximity"`
	QualityMatch        float64 `json:"quality_match"`
	VolumeMatch         float64 `json:"volume_match"`
	HistoricalSuccess   float64 `json:"historical_success"`
	PriceMatch          float64 `json:"price_match"`
}

// MatchedOffering is an offering snapshot stored on a pairing at generation time.
type MatchedOffering struct {
	OfferingID uuid.UUID `json:"offering_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	Price      float64   `json:"price"`
}

// Pairing is a persisted producer-buyer match with bilateral response state.
type Pairing struct {
	ID                     uuid.UUID         `json:"id"`
	ProducerID             uuid.UUID         `json:"producer_id"`
	BuyerID                uuid.UUID         `json:"buyer_id"`
	MatchScore             int               `json:"match_score"`
	Factors                Factors           `json:"factors"`
	Status                 PairingStatus     `json:"status"`
	ProducerResponse       Response          `json:"producer_response"`
	BuyerResponse          Response          `json:"buyer_response"`
	MatchedOfferings       []MatchedOffering `json:"matched_offerings"`
	DistanceKm             float64           `json:"distance_km"`
	DistanceKnown          bool              `json:"distance_known"`
	EstimatedTransportCost float64           `json:"estimated_transport_cost"`
	PotentialRevenue       float64           `json:"potential_revenue"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
	ExpiresAt              time.Time         `json:"expires_at"`
}

// NewPairingFromCandidate builds a fresh pending pairing valid for the given window.
func NewPairingFromCandidate(c *Candidate, now time.Time, validity time.Duration) *Pairing {
	return &Pairing{
		ID:                     uuid.New(),
		ProducerID:             c.ProducerID,
		BuyerID:                c.BuyerID,
		MatchScore:             c.MatchScore,
		Factors:                c.Factors,
		Status:                 StatusPending,
		ProducerResponse:       ResponsePending,
		BuyerResponse:          ResponsePending,
		MatchedOfferings:       c.MatchedOfferings,
		DistanceKm:             c.DistanceKm,
		DistanceKnown:          c.DistanceKnown,
		EstimatedTransportCost: c.EstimatedTransportCost,
		PotentialRevenue:       c.PotentialRevenue,
		CreatedAt:              now,
		UpdatedAt:              now,
		ExpiresAt:              now.Add(validity),
	}
}

// DeriveStatus computes the overall status from both responses. Any rejection
// wins, then mutual acceptance, then single-sided acceptance.
func DeriveStatus(producer, buyer Response) PairingStatus {
	switch {
	case producer == ResponseRejected || buyer == ResponseRejected:
		return StatusRejected
	case producer == ResponseAccepted && buyer == ResponseAccepted:
		return StatusBothAccepted
	case producer == ResponseAccepted:
		return StatusAcceptedByProducer
	case buyer == ResponseAccepted:
		return StatusAcceptedByBuyer
	default:
		return StatusPending
	}
}

// Respond records one side's decision and recomputes the status. A rejected
// pairing never leaves rejected: the rejecting side cannot take its rejection
// back, so Respond then changes nothing and reports false. The other side's
// decision is still recorded.
func (p *Pairing) Respond(side Side, decision Response, now time.Time) bool {
	wasRejected := p.Status == StatusRejected
	if wasRejected && p.ResponseOf(side) == ResponseRejected {
		return false
	}

	switch side {
	case SideProducer:
		p.ProducerResponse = decision
	case SideBuyer:
		p.BuyerResponse = decision
	}
	p.Status = DeriveStatus(p.ProducerResponse, p.BuyerResponse)
	if wasRejected {
		p.Status = StatusRejected
	}
	p.UpdatedAt = now

	return true
}

// ResponseOf returns the recorded decision of one side.
func (p *Pairing) ResponseOf(side Side) Response {
	if side == SideBuyer {
		return p.BuyerResponse
	}

	return p.ProducerResponse
}

// PartyID returns the id of the party acting on the given side.
func (p *Pairing) PartyID(side Side) uuid.UUID {
	if side == SideBuyer {
		return p.BuyerID
	}

	return p.ProducerID
}

// Involves reports whether the party is the producer or the buyer of the pairing.
func (p *Pairing) Involves(partyID uuid.UUID) bool {
	return p.ProducerID == partyID || p.BuyerID == partyID
}

// IsExpired reports whether the validity window has passed.
func (p *Pairing) IsExpired(now time.Time) bool {
	return p.ExpiresAt.Before(now)
}

// PairingStats aggregates a party's pairings.
type PairingStats struct {
	TotalMatches          int64   `json:"total_matches"`
	BothAccepted          int64   `json:"both_accepted"`
	Pending               int64   `json:"pending"`
	Rejected              int64   `json:"rejected"`
	TotalPotentialRevenue float64 `json:"total_potential_revenue"`
	AcceptanceRate        float64 `json:"acceptance_rate"`
}
