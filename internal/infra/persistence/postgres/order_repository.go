package postgres

import (
	"context"

	"agrimatch/internal/domain/repository"
	"agrimatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

type completedCountRow struct {
	CounterpartID uuid.UUID
	Completed     int
}

// CountCompletedByProducer returns completed order counts of a producer keyed by buyer.
func (repo *orderRepository) CountCompletedByProducer(ctx context.Context, producerID uuid.UUID) (map[uuid.UUID]int, error) {
	return repo.countCompleted(ctx, "producer_id", "buyer_id", producerID)
}

// CountCompletedByBuyer returns completed order counts of a buyer keyed by producer.
func (repo *orderRepository) CountCompletedByBuyer(ctx context.Context, buyerID uuid.UUID) (map[uuid.UUID]int, error) {
	return repo.countCompleted(ctx, "buyer_id", "producer_id", buyerID)
}

func (repo *orderRepository) countCompleted(ctx context.Context, ownColumn, counterpartColumn string, partyID uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []completedCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select(counterpartColumn+" AS counterpart_id, COUNT(*) AS completed").
		Where(ownColumn+" = ? AND status = ?", partyID, model.OrderStatusCompleted).
		Group(counterpartColumn).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count completed orders")
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.CounterpartID] = row.Completed
	}

	return counts, nil
}
