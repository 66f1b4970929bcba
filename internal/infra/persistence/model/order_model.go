package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusCompleted marks an order that was delivered and paid.
const OrderStatusCompleted = "Completed"

// OrderModel is the GORM-specific struct for the 'orders' table.
// Only the columns needed for trading history are mapped.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProducerID uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_pair,priority:1"`
	BuyerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_pair,priority:2"`
	Status     string    `gorm:"type:varchar(30);not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
