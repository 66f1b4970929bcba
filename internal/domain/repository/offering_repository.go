package repository

import (
	"context"

	"agrimatch/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferingRepository reads catalog offerings. Only approved offerings take part in matching.
type OfferingRepository interface {
	// ListApprovedByProducer retrieves the approved offerings of one producer.
	ListApprovedByProducer(ctx context.Context, producerID uuid.UUID) ([]entity.Offering, error)

	// ListApprovedByProducers retrieves approved offerings grouped by producer.
	// Producers without approved offerings are absent from the map.
	ListApprovedByProducers(ctx context.Context, producerIDs []uuid.UUID) (map[uuid.UUID][]entity.Offering, error)

	// FindOfferingsByIDs retrieves the offerings that still exist among ids.
	FindOfferingsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Offering, error)
}
