package postgres

import (
	"context"
	"math"
	"time"

	"agrimatch/internal/domain/entity"
	domainerrors "agrimatch/internal/domain/errors"
	"agrimatch/internal/domain/repository"
	"agrimatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activePairTarget is the predicate of idx_pairings_active_pair. It must be a
// literal so PostgreSQL can infer the partial index as the conflict target.
const activePairTarget = "status <> 'rejected'"

// regeneratedColumns are overwritten when a pair is scored again.
var regeneratedColumns = []string{
	"match_score",
	"product_match",
	"geographic_proximity",
	"quality_match",
	"volume_match",
	"historical_success",
	"price_match",
	"matched_offerings",
	"distance_km",
	"distance_known",
	"estimated_transport_cost",
	"potential_revenue",
	"updated_at",
}

// pairingRepository implements the repository.PairingRepository interface.
type pairingRepository struct {
	db *gorm.DB
}

// NewPairingRepository is the constructor for pairingRepository.
func NewPairingRepository(db *gorm.DB) repository.PairingRepository {
	return &pairingRepository{db: db}
}

// upsertClauses builds INSERT ... ON CONFLICT (producer_id, buyer_id) WHERE
// status <> 'rejected' DO UPDATE ... RETURNING *.
func upsertClauses() []clause.Expression {
	return []clause.Expression{
		clause.OnConflict{
			Columns:     []clause.Column{{Name: "producer_id"}, {Name: "buyer_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: activePairTarget}}},
			DoUpdates:   clause.AssignmentColumns(regeneratedColumns),
		},
		clause.Returning{},
	}
}

// UpsertCandidate inserts or refreshes the active pairing of a producer and buyer.
func (repo *pairingRepository) UpsertCandidate(ctx context.Context, pairing *entity.Pairing) (*entity.Pairing, error) {
	pairingM := fromPairingDomain(pairing)

	if err := repo.db.WithContext(ctx).
		Clauses(upsertClauses()...).
		Create(pairingM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("pairing score out of range")
		}
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrConflict.WithDetails("pairing already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert pairing")
	}

	return toPairingDomain(pairingM), nil
}

// FindPairingByID retrieves a pairing by its unique ID.
func (repo *pairingRepository) FindPairingByID(ctx context.Context, id uuid.UUID) (*entity.Pairing, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindPairingByIDForUpdate retrieves a pairing with SELECT ... FOR UPDATE.
func (repo *pairingRepository) FindPairingByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Pairing, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *pairingRepository) findByID(tx *gorm.DB, id uuid.UUID) (*entity.Pairing, error) {
	var pairingM model.PairingModel

	if err := tx.Where("id = ?", id).First(&pairingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPairingNotFound
		}

		return nil, errors.Wrap(err, "failed to find pairing by ID")
	}

	return toPairingDomain(&pairingM), nil
}

// UpdateResponses persists both responses, the status and updatedAt.
func (repo *pairingRepository) UpdateResponses(ctx context.Context, pairing *entity.Pairing) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PairingModel{}).
		Where("id = ?", pairing.ID).
		Updates(map[string]any{
			"producer_response": string(pairing.ProducerResponse),
			"buyer_response":    string(pairing.BuyerResponse),
			"status":            pairing.Status.String(),
			"updated_at":        pairing.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update pairing responses")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPairingNotFound
	}

	return nil
}

// ListActiveBySide retrieves non-expired pairings of a party on one side.
func (repo *pairingRepository) ListActiveBySide(ctx context.Context, side entity.Side, partyID uuid.UUID, now time.Time, limit int) ([]*entity.Pairing, error) {
	column := "producer_id"
	if side == entity.SideBuyer {
		column = "buyer_id"
	}

	var pairingModels []*model.PairingModel
	if err := repo.db.WithContext(ctx).
		Where(column+" = ? AND expires_at >= ?", partyID, now).
		Order("match_score DESC, created_at DESC").
		Limit(limit).
		Find(&pairingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pairings")
	}

	pairings := make([]*entity.Pairing, 0, len(pairingModels))
	for _, pairingM := range pairingModels {
		pairings = append(pairings, toPairingDomain(pairingM))
	}

	return pairings, nil
}

type pairingStatsRow struct {
	TotalMatches          int64
	BothAccepted          int64
	Pending               int64
	Rejected              int64
	TotalPotentialRevenue float64
}

// StatsByParty aggregates the pairings involving the party on either side.
// Totals and pending count only pairings that have not expired.
func (repo *pairingRepository) StatsByParty(ctx context.Context, partyID uuid.UUID, now time.Time) (*entity.PairingStats, error) {
	var row pairingStatsRow

	if err := repo.db.WithContext(ctx).
		Model(&model.PairingModel{}).
		Select(`COUNT(*) FILTER (WHERE expires_at >= ?) AS total_matches,
			COUNT(*) FILTER (WHERE status = ?) AS both_accepted,
			COUNT(*) FILTER (WHERE status = ? AND expires_at >= ?) AS pending,
			COUNT(*) FILTER (WHERE status = ?) AS rejected,
			COALESCE(SUM(potential_revenue) FILTER (WHERE status = ?), 0) AS total_potential_revenue`,
			now,
			entity.StatusBothAccepted.String(),
			entity.StatusPending.String(), now,
			entity.StatusRejected.String(),
			entity.StatusBothAccepted.String(),
		).
		Where("producer_id = ? OR buyer_id = ?", partyID, partyID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pairing stats")
	}

	return &entity.PairingStats{
		TotalMatches:          row.TotalMatches,
		BothAccepted:          row.BothAccepted,
		Pending:               row.Pending,
		Rejected:              row.Rejected,
		TotalPotentialRevenue: row.TotalPotentialRevenue,
		AcceptanceRate:        acceptanceRate(row.BothAccepted, row.TotalMatches),
	}, nil
}

// acceptanceRate is accepted/total as a percentage with two decimals.
func acceptanceRate(accepted, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return math.Round(float64(accepted)/float64(total)*100*100) / 100
}

// DeleteExpired removes non-terminal pairings past their validity window.
func (repo *pairingRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	statuses := make([]string, 0, len(entity.NonTerminalStatuses()))
	for _, s := range entity.NonTerminalStatuses() {
		statuses = append(statuses, s.String())
	}

	result := repo.db.WithContext(ctx).
		Where("expires_at < ? AND status IN ?", now, statuses).
		Delete(&model.PairingModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired pairings")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toPairingDomain converts a GORM PairingModel to a domain Pairing entity.
func toPairingDomain(data *model.PairingModel) *entity.Pairing {
	if data == nil {
		return nil
	}

	offerings := make([]entity.MatchedOffering, 0, len(data.MatchedOfferings))
	for _, o := range data.MatchedOfferings {
		offerings = append(offerings, entity.MatchedOffering{
			OfferingID: o.OfferingID,
			Name:       o.Name,
			Category:   o.Category,
			Quantity:   o.Quantity,
			Price:      o.Price,
		})
	}

	return &entity.Pairing{
		ID:         data.ID,
		ProducerID: data.ProducerID,
		BuyerID:    data.BuyerID,
		MatchScore: data.MatchScore,
		Factors: entity.Factors{
			ProductMatch:        data.ProductMatch,
			GeographicProximity: data.GeographicProximity,
			QualityMatch:        data.QualityMatch,
			VolumeMatch:         data.VolumeMatch,
			HistoricalSuccess:   data.HistoricalSuccess,
			PriceMatch:          data.PriceMatch,
		},
		Status:                 entity.PairingStatus(data.Status),
		ProducerResponse:       entity.Response(data.ProducerResponse),
		BuyerResponse:          entity.Response(data.BuyerResponse),
		MatchedOfferings:       offerings,
		DistanceKm:             data.DistanceKm,
		DistanceKnown:          data.DistanceKnown,
		EstimatedTransportCost: data.EstimatedTransportCost,
		PotentialRevenue:       data.PotentialRevenue,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
		ExpiresAt:              data.ExpiresAt,
	}
}

// fromPairingDomain converts a domain Pairing entity to a GORM PairingModel.
func fromPairingDomain(data *entity.Pairing) *model.PairingModel {
	if data == nil {
		return nil
	}

	offerings := make(datatypes.JSONSlice[model.MatchedOfferingDoc], 0, len(data.MatchedOfferings))
	for _, o := range data.MatchedOfferings {
		offerings = append(offerings, model.MatchedOfferingDoc{
			OfferingID: o.OfferingID,
			Name:       o.Name,
			Category:   o.Category,
			Quantity:   o.Quantity,
			Price:      o.Price,
		})
	}

	return &model.PairingModel{
		ID:                     data.ID,
		ProducerID:             data.ProducerID,
		BuyerID:                data.BuyerID,
		MatchScore:             data.MatchScore,
		ProductMatch:           data.Factors.ProductMatch,
		GeographicProximity:    data.Factors.GeographicProximity,
		QualityMatch:           data.Factors.QualityMatch,
		VolumeMatch:            data.Factors.VolumeMatch,
		HistoricalSuccess:      data.Factors.HistoricalSuccess,
		PriceMatch:             data.Factors.PriceMatch,
		Status:                 data.Status.String(),
		ProducerResponse:       string(data.ProducerResponse),
		BuyerResponse:          string(data.BuyerResponse),
		MatchedOfferings:       offerings,
		DistanceKm:             data.DistanceKm,
		DistanceKnown:          data.DistanceKnown,
		EstimatedTransportCost: data.EstimatedTransportCost,
		PotentialRevenue:       data.PotentialRevenue,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
		ExpiresAt:              data.ExpiresAt,
	}
}
