package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferingModel is the GORM-specific struct for the 'offerings' table.
type OfferingModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProducerID        uuid.UUID `gorm:"type:uuid;not null;index:idx_offerings_producer_approved,priority:1"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Category          string    `gorm:"type:varchar(100);not null"`
	UnitPrice         float64   `gorm:"type:numeric(14,2);not null;default:0"`
	AvailableQuantity float64   `gorm:"type:numeric(14,2);not null;default:0"`
	EstimatedYield    float64   `gorm:"type:numeric(14,2);not null;default:0"`
	QualityGrade      string    `gorm:"type:varchar(30)"`
	QualityScore      *float64  `gorm:"type:numeric(5,2);check:quality_score BETWEEN 0 AND 100"`
	Approved          bool      `gorm:"not null;default:false;index:idx_offerings_producer_approved,priority:2"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OfferingModel) TableName() string {
	return "offerings"
}
