package postgres

import (
	"context"
	"log/slog"

	"agrimatch/internal/domain/entity"
	"agrimatch/internal/domain/repository"
	"agrimatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offeringRepository implements the repository.OfferingRepository interface.
type offeringRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewOfferingRepository is the constructor for offeringRepository.
func NewOfferingRepository(db *gorm.DB, logger *slog.Logger) repository.OfferingRepository {
	return &offeringRepository{db: db, logger: logger}
}

// ListApprovedByProducer retrieves the approved offerings of one producer.
func (repo *offeringRepository) ListApprovedByProducer(ctx context.Context, producerID uuid.UUID) ([]entity.Offering, error) {
	var offeringModels []*model.OfferingModel

	if err := repo.db.WithContext(ctx).
		Where("producer_id = ? AND approved = ?", producerID, true).
		Order("created_at ASC").
		Find(&offeringModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list approved offerings")
	}

	return repo.toValidOfferings(ctx, offeringModels), nil
}

// ListApprovedByProducers retrieves approved offerings grouped by producer.
func (repo *offeringRepository) ListApprovedByProducers(ctx context.Context, producerIDs []uuid.UUID) (map[uuid.UUID][]entity.Offering, error) {
	grouped := make(map[uuid.UUID][]entity.Offering)
	if len(producerIDs) == 0 {
		return grouped, nil
	}

	var offeringModels []*model.OfferingModel
	if err := repo.db.WithContext(ctx).
		Where("producer_id IN ? AND approved = ?", producerIDs, true).
		Order("created_at ASC").
		Find(&offeringModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list approved offerings by producers")
	}

	for _, offering := range repo.toValidOfferings(ctx, offeringModels) {
		grouped[offering.ProducerID] = append(grouped[offering.ProducerID], offering)
	}

	return grouped, nil
}

// FindOfferingsByIDs retrieves the offerings that still exist among ids.
func (repo *offeringRepository) FindOfferingsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Offering, error) {
	if len(ids) == 0 {
		return []entity.Offering{}, nil
	}

	var offeringModels []*model.OfferingModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&offeringModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offerings by IDs")
	}

	return repo.toValidOfferings(ctx, offeringModels), nil
}

// --- Mapper Functions ---

// toValidOfferings maps rows to entities and skips rows whose values are out
// of range, so they never reach scoring or a pairing snapshot.
func (repo *offeringRepository) toValidOfferings(ctx context.Context, data []*model.OfferingModel) []entity.Offering {
	offerings := make([]entity.Offering, 0, len(data))
	for _, offeringM := range data {
		offering := toOfferingDomain(offeringM)
		if err := offering.Validate(); err != nil {
			repo.logger.WarnContext(ctx, "Skipping invalid offering",
				slog.String("offeringId", offering.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		offerings = append(offerings, offering)
	}

	return offerings
}

// toOfferingDomain converts a GORM OfferingModel to a domain Offering entity.
func toOfferingDomain(data *model.OfferingModel) entity.Offering {
	return entity.Offering{
		ID:                data.ID,
		ProducerID:        data.ProducerID,
		Name:              data.Name,
		Category:          data.Category,
		UnitPrice:         data.UnitPrice,
		AvailableQuantity: data.AvailableQuantity,
		EstimatedYield:    data.EstimatedYield,
		Grade:             entity.QualityGrade(data.QualityGrade),
		QualityScore:      data.QualityScore,
		Approved:          data.Approved,
	}
}
