package usecase

import (
	"context"

	"agrimatch/internal/domain/entity"

	"github.com/google/uuid"
)

// RespondInput carries one side's decision on a pairing.
type RespondInput struct {
	PairingID uuid.UUID
	PartyID   uuid.UUID
	Side      entity.Side
	Decision  entity.Response
}

// PairingDetails is a pairing expanded with both parties and the current
// state of its matched offerings.
type PairingDetails struct {
	Pairing  *entity.Pairing
	Producer entity.PartySummary
	Buyer    entity.PartySummary
	// Offerings still present in the catalog, in snapshot order
	Offerings []entity.Offering
}

// PairingUsecase covers the lifecycle of persisted pairings.
type PairingUsecase interface {
	// ListMatches returns the party's non-expired pairings on one side, best first.
	ListMatches(ctx context.Context, side entity.Side, partyID uuid.UUID) ([]*entity.Pairing, error)

	// Respond records a decision and returns the updated pairing.
	Respond(ctx context.Context, input *RespondInput) (*entity.Pairing, error)

	// GetDetails returns a pairing the party is involved in.
	GetDetails(ctx context.Context, pairingID, partyID uuid.UUID) (*PairingDetails, error)

	// GetStats aggregates the party's pairings.
	GetStats(ctx context.Context, partyID uuid.UUID) (*entity.PairingStats, error)
}
