// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// partyRepository implements the repository.PartyRepository interface.
type partyRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPartyRepository is the constructor for partyRepository.
func NewPartyRepository(db *gorm.DB, logger *slog.Logger) repository.PartyRepository {
	return &partyRepository{db: db, logger: logger}
}

// FindPartyByID retrieves a party by its unique ID.
func (repo *partyRepository) FindPartyByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	var partyM model.PartyModel

	if err := repo.db.WithContext(ctx).
		Preload("Preferences").
		Where("id = ?", id).
		First(&partyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartyNotFound
		}

		return nil, errors.Wrap(err, "failed to find party by ID")
	}

	return repo.toParty(ctx, &partyM), nil
}

// FindPartiesByIDs retrieves the parties that exist among ids.
func (repo *partyRepository) FindPartiesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Party, error) {
	if len(ids) == 0 {
		return []*entity.Party{}, nil
	}

	var partyModels []*model.PartyModel
	if err := repo.db.WithContext(ctx).
		Preload("Preferences").
		Where("id IN ?", ids).
		Find(&partyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find parties by IDs")
	}

	return repo.toParties(ctx, partyModels), nil
}

// ListPartiesByRole retrieves every party having the role.
func (repo *partyRepository) ListPartiesByRole(ctx context.Context, role entity.Role) ([]*entity.Party, error) {
	var partyModels []*model.PartyModel

	if err := repo.db.WithContext(ctx).
		Preload("Preferences").
		Where("role = ?", role.String()).
		Order("created_at ASC").
		Find(&partyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list parties by role")
	}

	return repo.toParties(ctx, partyModels), nil
}

// --- Mapper Functions ---

func (repo *partyRepository) toParties(ctx context.Context, data []*model.PartyModel) []*entity.Party {
	parties := make([]*entity.Party, 0, len(data))
	for _, partyM := range data {
		parties = append(parties, repo.toParty(ctx, partyM))
	}

	return parties
}

// toParty maps the row and drops preference values that fail validation.
func (repo *partyRepository) toParty(ctx context.Context, data *model.PartyModel) *entity.Party {
	party := toPartyDomain(data)
	if party == nil || party.Preferences == nil {
		return party
	}

	if dropped := party.Preferences.Sanitize(); dropped > 0 {
		repo.logger.WarnContext(ctx, "Dropped invalid buyer preference values",
			slog.String("partyId", party.ID.String()),
			slog.Int("dropped", dropped),
		)
	}

	return party
}

// toPartyDomain converts a GORM PartyModel to a domain Party entity.
func toPartyDomain(data *model.PartyModel) *entity.Party {
	if data == nil {
		return nil
	}

	return &entity.Party{
		ID:           data.ID,
		Role:         entity.Role(data.Role),
		Name:         data.Name,
		BusinessName: data.BusinessName,
		Region:       data.Region,
		Preferences:  toPreferencesDomain(data.Preferences),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toPreferencesDomain(data *model.BuyerPreferenceModel) *entity.BuyerPreferences {
	if data == nil {
		return nil
	}

	forecasts := make([]entity.DemandForecast, 0, len(data.DemandForecasts))
	for _, f := range data.DemandForecasts {
		forecasts = append(forecasts, entity.DemandForecast{
			Category: f.Category,
			Quantity: f.Quantity,
			Deadline: f.Deadline,
			Priority: f.Priority,
			Status:   entity.ForecastStatus(f.Status),
		})
	}

	return &entity.BuyerPreferences{
		PreferredCategories: []string(data.PreferredCategories),
		MaxBudget:           data.MaxBudget,
		DemandForecasts:     forecasts,
	}
}
