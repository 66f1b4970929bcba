package impl

import (
	"context"
	"log/slog"
	"time"

	"agrimatch/config"
	deliverycontext "agrimatch/internal/delivery/context"
	"agrimatch/internal/domain/entity"
	domainerrors "agrimatch/internal/domain/errors"
	"agrimatch/internal/domain/repository"
	"agrimatch/internal/domain/service"
	"agrimatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type pairingService struct {
	txManager    repository.TransactionManager
	pairingRepo  repository.PairingRepository
	partyRepo    repository.PartyRepository
	offeringRepo repository.OfferingRepository
	publisher    service.EventPublisher
	metrics      service.MatchMetrics
	cfg          *config.MatchingConfig
	logger       *slog.Logger
	now          func() time.Time
}

// PairingServiceParams holds dependencies for PairingService, injected by Fx.
type PairingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PairingRepo  repository.PairingRepository
	PartyRepo    repository.PartyRepository
	OfferingRepo repository.OfferingRepository
	Publisher    service.EventPublisher
	Metrics      service.MatchMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPairingService creates a new pairing service instance
func NewPairingService(params PairingServiceParams) usecase.PairingUsecase {
	return &pairingService{
		txManager:    params.TxManager,
		pairingRepo:  params.PairingRepo,
		partyRepo:    params.PartyRepo,
		offeringRepo: params.OfferingRepo,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		cfg:          params.Config.Matching,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (s *pairingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListMatches returns the party's non-expired pairings on one side.
func (s *pairingService) ListMatches(ctx context.Context, side entity.Side, partyID uuid.UUID) ([]*entity.Pairing, error) {
	if !side.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown side")
	}

	pairings, err := s.pairingRepo.ListActiveBySide(ctx, side, partyID, s.now(), s.cfg.ListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pairings")
	}

	return pairings, nil
}

// Respond applies one side's decision under a row lock so concurrent answers
// from both parties cannot overwrite each other.
func (s *pairingService) Respond(ctx context.Context, input *usecase.RespondInput) (*entity.Pairing, error) {
	if !input.Side.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown side")
	}
	if !input.Decision.IsDecision() {
		return nil, domainerrors.ErrInvalidDecision
	}

	var (
		pairing *entity.Pairing
		changed bool
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPairingRepository()

		found, err := repo.FindPairingByIDForUpdate(ctx, input.PairingID)
		if err != nil {
			if errors.Is(err, repository.ErrPairingNotFound) {
				return domainerrors.ErrPairingNotFound
			}

			return errors.Wrap(err, "failed to find pairing")
		}

		if found.PartyID(input.Side) != input.PartyID {
			return domainerrors.ErrPairingNotFound
		}

		changed = found.Respond(input.Side, input.Decision, s.now())
		if changed {
			if err := repo.UpdateResponses(ctx, found); err != nil {
				if errors.Is(err, repository.ErrPairingNotFound) {
					return domainerrors.ErrPairingNotFound
				}

				return errors.Wrap(err, "failed to update pairing responses")
			}
		}
		pairing = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !changed {
		s.log(ctx).Info("Rejection cannot be withdrawn",
			slog.String("pairingId", pairing.ID.String()),
			slog.String("side", string(input.Side)),
		)

		return pairing, nil
	}

	s.metrics.IncResponses(string(input.Side), string(input.Decision), pairing.Status.String())
	s.publishStatusChange(ctx, pairing, input)

	return pairing, nil
}

// publishStatusChange emits the pairing event. Failures are logged only; the
// response is already committed.
func (s *pairingService) publishStatusChange(ctx context.Context, pairing *entity.Pairing, input *usecase.RespondInput) {
	event := &service.PairingEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		PairingID:  pairing.ID.String(),
		ProducerID: pairing.ProducerID.String(),
		BuyerID:    pairing.BuyerID.String(),
		Side:       string(input.Side),
		Decision:   string(input.Decision),
		Status:     pairing.Status.String(),
		MatchScore: pairing.MatchScore,
	}

	if err := s.publisher.PublishPairingEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish pairing event",
			slog.String("pairingId", event.PairingID),
			slog.Any("error", err),
		)
	}
}

// GetDetails returns the pairing with both parties and current offering data.
func (s *pairingService) GetDetails(ctx context.Context, pairingID, partyID uuid.UUID) (*usecase.PairingDetails, error) {
	pairing, err := s.pairingRepo.FindPairingByID(ctx, pairingID)
	if err != nil {
		if errors.Is(err, repository.ErrPairingNotFound) {
			return nil, domainerrors.ErrPairingNotFound
		}

		return nil, errors.Wrap(err, "failed to find pairing")
	}

	if !pairing.Involves(partyID) {
		return nil, domainerrors.ErrPairingNotFound
	}

	offeringIDs := make([]uuid.UUID, 0, len(pairing.MatchedOfferings))
	for _, m := range pairing.MatchedOfferings {
		offeringIDs = append(offeringIDs, m.OfferingID)
	}

	var (
		parties   []*entity.Party
		offerings []entity.Offering
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		parties, err = s.partyRepo.FindPartiesByIDs(gctx, []uuid.UUID{pairing.ProducerID, pairing.BuyerID})

		return errors.Wrap(err, "failed to find pairing parties")
	})
	if len(offeringIDs) > 0 {
		g.Go(func() error {
			var err error
			offerings, err = s.offeringRepo.FindOfferingsByIDs(gctx, offeringIDs)

			return errors.Wrap(err, "failed to find matched offerings")
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	details := &usecase.PairingDetails{
		Pairing:   pairing,
		Producer:  entity.PartySummary{ID: pairing.ProducerID, Role: entity.RoleProducer},
		Buyer:     entity.PartySummary{ID: pairing.BuyerID, Role: entity.RoleBuyer},
		Offerings: orderBySnapshot(offerings, offeringIDs),
	}
	for _, p := range parties {
		switch p.ID {
		case pairing.ProducerID:
			details.Producer = p.Summary()
		case pairing.BuyerID:
			details.Buyer = p.Summary()
		}
	}

	return details, nil
}

// orderBySnapshot keeps offerings in the order they were snapshotted and
// drops those that no longer exist.
func orderBySnapshot(offerings []entity.Offering, ids []uuid.UUID) []entity.Offering {
	byID := make(map[uuid.UUID]entity.Offering, len(offerings))
	for _, o := range offerings {
		byID[o.ID] = o
	}

	out := make([]entity.Offering, 0, len(offerings))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			out = append(out, o)
		}
	}

	return out
}

// GetStats aggregates the pairings the party is involved in.
func (s *pairingService) GetStats(ctx context.Context, partyID uuid.UUID) (*entity.PairingStats, error) {
	stats, err := s.pairingRepo.StatsByParty(ctx, partyID, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pairing stats")
	}

	return stats, nil
}
