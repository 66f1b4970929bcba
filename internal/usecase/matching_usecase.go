// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agrimatch/internal/domain/entity"

	"github.com/google/uuid"
)

// GenerateMatchesOutput is the result of one generation run.
type GenerateMatchesOutput struct {
	// Candidates above the score threshold, best first
	Candidates []entity.Candidate
	// Number of top candidates persisted as pairings
	Saved   int
	Message string
}

// MatchingUsecase scores a focal party against the whole counterpart
// population and persists the best candidates.
type MatchingUsecase interface {
	GenerateForProducer(ctx context.Context, producerID uuid.UUID) (*GenerateMatchesOutput, error)
	GenerateForBuyer(ctx context.Context, buyerID uuid.UUID) (*GenerateMatchesOutput, error)
}
