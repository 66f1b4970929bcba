package service

import (
	"context"
	"encoding/json"
	"time"
)

// Event types carried in the envelope of every published message.
const (
	EventTypePairingStatusChanged = "pairing.status_changed"
	EventTypeSweepRequested       = "sweep.requested"
)

// EventEnvelope is the wire shape of a published event.
type EventEnvelope struct {
	EventType  string          `json:"event_type"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// PairingEvent is published whenever a party responds to a pairing.
type PairingEvent struct {
	RequestID  string `json:"request_id,omitempty"`
	PairingID  string `json:"pairing_id"`
	ProducerID string `json:"producer_id"`
	BuyerID    string `json:"buyer_id"`
	Side       string `json:"side"`
	Decision   string `json:"decision"`
	Status     string `json:"status"`
	MatchScore int    `json:"match_score"`
}

// SweepRequest asks a worker to run the expiration sweep.
type SweepRequest struct {
	RequestID   string `json:"request_id,omitempty"`
	RequestedBy string `json:"requested_by"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPairingEvent publishes a pairing status change
	PublishPairingEvent(ctx context.Context, event *PairingEvent) error

	// PublishSweepRequest asks workers to run the expiration sweep
	PublishSweepRequest(ctx context.Context, req *SweepRequest) error

	// Close releases any resources held by the publisher
	Close() error
}
