package repository

import (
	"context"
	"time"

	"agrimatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPairingNotFound is returned when a pairing does not exist.
var ErrPairingNotFound = errors.New("pairing not found")

// PairingRepository persists pairings. At most one pairing with a status other
// than rejected exists per (producer, buyer).
type PairingRepository interface {
	// UpsertCandidate atomically inserts the pairing or, when a non-rejected
	// pairing for the same producer and buyer exists, overwrites its score,
	// factors, distance, costs and matched offerings. Responses, status and
	// expiresAt of an existing pairing are left untouched. The stored pairing
	// is returned.
	UpsertCandidate(ctx context.Context, pairing *entity.Pairing) (*entity.Pairing, error)

	// FindPairingByID retrieves a pairing by its unique ID.
	FindPairingByID(ctx context.Context, id uuid.UUID) (*entity.Pairing, error)

	// FindPairingByIDForUpdate retrieves a pairing and locks its row until the
	// surrounding transaction ends.
	FindPairingByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Pairing, error)

	// UpdateResponses persists both responses, the status and updatedAt.
	UpdateResponses(ctx context.Context, pairing *entity.Pairing) error

	// ListActiveBySide retrieves non-expired pairings where the party acts on
	// the given side, highest score first.
	ListActiveBySide(ctx context.Context, side entity.Side, partyID uuid.UUID, now time.Time, limit int) ([]*entity.Pairing, error)

	// StatsByParty aggregates the pairings involving the party on either side.
	StatsByParty(ctx context.Context, partyID uuid.UUID, now time.Time) (*entity.PairingStats, error)

	// DeleteExpired removes non-terminal pairings whose expiresAt is before now
	// and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
