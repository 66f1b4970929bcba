package repository

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository reads completed order history between producers and buyers.
type OrderRepository interface {
	// CountCompletedByProducer returns completed order counts of a producer keyed by buyer.
	CountCompletedByProducer(ctx context.Context, producerID uuid.UUID) (map[uuid.UUID]int, error)

	// CountCompletedByBuyer returns completed order counts of a buyer keyed by producer.
	CountCompletedByBuyer(ctx context.Context, buyerID uuid.UUID) (map[uuid.UUID]int, error)
}
