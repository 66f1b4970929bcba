// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agrimatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPartyNotFound is returned when a producer or buyer profile does not exist.
var ErrPartyNotFound = errors.New("party not found")

// PartyRepository reads producer and buyer profiles owned by the profile subsystem.
type PartyRepository interface {
	// FindPartyByID retrieves a party by its unique ID.
	FindPartyByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)

	// FindPartiesByIDs retrieves the parties that exist among ids, in no particular order.
	FindPartiesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Party, error)

	// ListPartiesByRole retrieves every party having the role.
	ListPartiesByRole(ctx context.Context, role entity.Role) ([]*entity.Party, error)
}
