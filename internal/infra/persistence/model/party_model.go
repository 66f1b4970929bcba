package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PartyModel is the GORM-specific struct for the 'parties' table.
// It is owned by the profile subsystem; matching only reads it.
type PartyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	BusinessName string    `gorm:"type:varchar(255)"`
	Region       string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Preferences *BuyerPreferenceModel `gorm:"foreignKey:PartyID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (PartyModel) TableName() string {
	return "parties"
}

// DemandForecastDoc is one entry of the demand forecast JSON column.
type DemandForecastDoc struct {
	Category string     `json:"category"`
	Quantity float64    `json:"quantity"`
	Deadline *time.Time `json:"deadline,omitempty"`
	Priority string     `json:"priority,omitempty"`
	Status   string     `json:"status,omitempty"`
}

// BuyerPreferenceModel is the GORM-specific struct for the 'buyer_preferences' table.
type BuyerPreferenceModel struct {
	PartyID             uuid.UUID                              `gorm:"type:uuid;primary_key"`
	PreferredCategories datatypes.JSONSlice[string]            `gorm:"type:jsonb;not null;default:'[]'"`
	MaxBudget           *float64                               `gorm:"type:numeric(14,2)"`
	DemandForecasts     datatypes.JSONSlice[DemandForecastDoc] `gorm:"type:jsonb;not null;default:'[]'"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerPreferenceModel) TableName() string {
	return "buyer_preferences"
}
