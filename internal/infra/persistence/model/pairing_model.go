package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MatchedOfferingDoc is one entry of the matched offerings JSON column.
type MatchedOfferingDoc struct {
	OfferingID uuid.UUID `json:"offering_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	Price      float64   `json:"price"`
}

// PairingModel is the GORM-specific struct for the 'pairings' table.
// The partial unique index allows one non-rejected pairing per producer and buyer.
type PairingModel struct {
	ID                     uuid.UUID                               `gorm:"type:uuid;primary_key"`
	ProducerID             uuid.UUID                               `gorm:"type:uuid;not null;uniqueIndex:idx_pairings_active_pair,priority:1,where:status <> 'rejected'"`
	BuyerID                uuid.UUID                               `gorm:"type:uuid;not null;uniqueIndex:idx_pairings_active_pair,priority:2;index"`
	MatchScore             int                                     `gorm:"not null;check:match_score BETWEEN 0 AND 100"`
	ProductMatch           float64                                 `gorm:"type:numeric(6,2);not null"`
	GeographicProximity    float64                                 `gorm:"type:numeric(6,2);not null"`
	QualityMatch           float64                                 `gorm:"type:numeric(6,2);not null"`
	VolumeMatch            float64                                 `gorm:"type:numeric(6,2);not null"`
	HistoricalSuccess      float64                                 `gorm:"type:numeric(6,2);not null"`
	PriceMatch             float64                                 `gorm:"type:numeric(6,2);not null"`
	Status                 string                                  `gorm:"type:varchar(30);not null;default:'pending';index"`
	ProducerResponse       string                                  `gorm:"type:varchar(20);not null;default:'pending'"`
	BuyerResponse          string                                  `gorm:"type:varchar(20);not null;default:'pending'"`
	MatchedOfferings       datatypes.JSONSlice[MatchedOfferingDoc] `gorm:"type:jsonb;not null;default:'[]'"`
	DistanceKm             float64                                 `gorm:"type:numeric(10,2);not null;default:0"`
	DistanceKnown          bool                                    `gorm:"not null;default:false"`
	EstimatedTransportCost float64                                 `gorm:"type:numeric(14,2);not null;default:0"`
	PotentialRevenue       float64                                 `gorm:"type:numeric(16,2);not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	ExpiresAt              time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PairingModel) TableName() string {
	return "pairings"
}

// Models lists every table the service maps, in dependency order.
func Models() []any {
	return []any{
		&PartyModel{},
		&BuyerPreferenceModel{},
		&OfferingModel{},
		&OrderModel{},
		&PairingModel{},
	}
}
