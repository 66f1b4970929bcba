// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// QualityGrade is the catalog grade label of an offering.
type QualityGrade string

const (
	GradePremium       QualityGrade = "Premium"
	GradeA             QualityGrade = "Grade A"
	GradeB             QualityGrade = "Grade B"
	GradeStandard      QualityGrade = "Standard"
	GradeBelowStandard QualityGrade = "Below Standard"
)

// DefaultQualityScore is used for offerings without a grade or score.
const DefaultQualityScore = 50.0

var gradeScores = map[QualityGrade]float64{
	GradePremium:       100,
	GradeA:             80,
	GradeB:             65,
	GradeStandard:      50,
	GradeBelowStandard: 30,
}

// Score returns the 0-100 score of the grade label.
func (g QualityGrade) Score() (float64, bool) {
	s, ok := gradeScores[g]

	return s, ok
}

// IsValid checks if the grade is a known label.
func (g QualityGrade) IsValid() bool {
	_, ok := gradeScores[g]

	return ok
}

// Offering is an approved catalog listing of a producer.
type Offering struct {
	ID                uuid.UUID    `json:"id"`
	ProducerID        uuid.UUID    `json:"producer_id"`
	Name              string       `json:"name" validate:"required"`
	Category          string       `json:"category" validate:"required"`
	UnitPrice         float64      `json:"unit_price" validate:"gte=0"`
	AvailableQuantity float64      `json:"available_quantity" validate:"gte=0"`
	EstimatedYield    float64      `json:"estimated_yield" validate:"gte=0"`
	Grade             QualityGrade `json:"grade,omitempty"`
	QualityScore      *float64     `json:"quality_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Approved          bool         `json:"approved"`
}

// Quantity is the available quantity, falling back to the estimated yield.
func (o Offering) Quantity() float64 {
	if o.AvailableQuantity > 0 {
		return o.AvailableQuantity
	}

	return o.EstimatedYield
}

// Quality returns the 0-100 quality score: an explicit score wins over the
// grade label, and anything missing counts as DefaultQualityScore.
func (o Offering) Quality() float64 {
	if o.QualityScore != nil {
		return clampScore(*o.QualityScore)
	}
	if s, ok := o.Grade.Score(); ok {
		return s
	}

	return DefaultQualityScore
}

// Snapshot captures the offering as stored on a pairing.
func (o Offering) Snapshot() MatchedOffering {
	return MatchedOffering{
		OfferingID: o.ID,
		Name:       o.Name,
		Category:   o.Category,
		Quantity:   o.Quantity(),
		Price:      o.UnitPrice,
	}
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
