package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agrimatch/config"
	deliverycontext "agrimatch/internal/delivery/context"
	"agrimatch/internal/domain/entity"
	domainerrors "agrimatch/internal/domain/errors"
	"agrimatch/internal/domain/geo"
	"agrimatch/internal/domain/matching"
	"agrimatch/internal/domain/repository"
	"agrimatch/internal/domain/service"
	"agrimatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Messages returned when the focal party cannot be matched yet.
const (
	msgNoApprovedOfferings = "No approved offerings to match. Add and get a product approved to receive matches"
	msgNoPreferredCategory = "No preferred categories set. Update your buyer preferences to receive matches"
)

type matchingService struct {
	partyRepo    repository.PartyRepository
	offeringRepo repository.OfferingRepository
	orderRepo    repository.OrderRepository
	pairingRepo  repository.PairingRepository
	scorer       *matching.Scorer
	metrics      service.MatchMetrics
	cfg          *config.MatchingConfig
	logger       *slog.Logger
	now          func() time.Time
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	PartyRepo    repository.PartyRepository
	OfferingRepo repository.OfferingRepository
	OrderRepo    repository.OrderRepository
	PairingRepo  repository.PairingRepository
	Scorer       *matching.Scorer
	Metrics      service.MatchMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		partyRepo:    params.PartyRepo,
		offeringRepo: params.OfferingRepo,
		orderRepo:    params.OrderRepo,
		pairingRepo:  params.PairingRepo,
		scorer:       params.Scorer,
		metrics:      params.Metrics,
		cfg:          params.Config.Matching,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// NewMatchScorer builds the scorer over the county centroid table.
func NewMatchScorer(cfg *config.Config) *matching.Scorer {
	return matching.NewScorer(geo.Kenya(), matching.Settings{
		MinScore:           cfg.Matching.MinScore,
		ProximityRadiusKm:  cfg.Matching.ProximityRadiusKm,
		TransportCostPerKm: cfg.Matching.TransportCostPerKm,
	})
}

func (s *matchingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GenerateForProducer scores the producer's approved offerings against every
// buyer that stated preferred categories.
func (s *matchingService) GenerateForProducer(ctx context.Context, producerID uuid.UUID) (*usecase.GenerateMatchesOutput, error) {
	start := s.now()

	var (
		producer  *entity.Party
		offerings []entity.Offering
		buyers    []*entity.Party
		history   map[uuid.UUID]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		producer, err = s.loadParty(gctx, producerID, entity.RoleProducer)

		return err
	})
	g.Go(func() error {
		var err error
		offerings, err = s.offeringRepo.ListApprovedByProducer(gctx, producerID)

		return errors.Wrap(err, "failed to list producer offerings")
	})
	g.Go(func() error {
		var err error
		buyers, err = s.partyRepo.ListPartiesByRole(gctx, entity.RoleBuyer)

		return errors.Wrap(err, "failed to list buyers")
	})
	g.Go(func() error {
		var err error
		history, err = s.orderRepo.CountCompletedByProducer(gctx, producerID)

		return errors.Wrap(err, "failed to count completed orders")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(offerings) == 0 {
		s.log(ctx).Info("Producer has no approved offerings", slog.String("producerId", producerID.String()))
		s.metrics.ObserveGeneration(entity.RoleProducer.String(), 0, time.Since(start))

		return emptyOutput(msgNoApprovedOfferings), nil
	}

	candidates := make([]entity.Candidate, 0, len(buyers))
	for _, buyer := range buyers {
		if !buyer.Preferences.HasCategories() {
			continue
		}

		c, ok := s.scorer.Evaluate(matching.Pair{
			Producer:        producer,
			Buyer:           buyer,
			Offerings:       offerings,
			CompletedOrders: history[buyer.ID],
		})
		if !ok {
			continue
		}
		c.Counterpart = buyer.Summary()
		candidates = append(candidates, c)
	}

	return s.finish(ctx, entity.RoleProducer, candidates, fmt.Sprintf("Found %d potential buyers", len(candidates)), start)
}

// GenerateForBuyer scores every producer with approved offerings against the
// buyer's preferences.
func (s *matchingService) GenerateForBuyer(ctx context.Context, buyerID uuid.UUID) (*usecase.GenerateMatchesOutput, error) {
	start := s.now()

	var (
		buyer     *entity.Party
		producers []*entity.Party
		history   map[uuid.UUID]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		buyer, err = s.loadParty(gctx, buyerID, entity.RoleBuyer)

		return err
	})
	g.Go(func() error {
		var err error
		producers, err = s.partyRepo.ListPartiesByRole(gctx, entity.RoleProducer)

		return errors.Wrap(err, "failed to list producers")
	})
	g.Go(func() error {
		var err error
		history, err = s.orderRepo.CountCompletedByBuyer(gctx, buyerID)

		return errors.Wrap(err, "failed to count completed orders")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !buyer.Preferences.HasCategories() {
		s.log(ctx).Info("Buyer has no preferred categories", slog.String("buyerId", buyerID.String()))
		s.metrics.ObserveGeneration(entity.RoleBuyer.String(), 0, time.Since(start))

		return emptyOutput(msgNoPreferredCategory), nil
	}

	producerIDs := make([]uuid.UUID, 0, len(producers))
	for _, p := range producers {
		producerIDs = append(producerIDs, p.ID)
	}

	offeringsByProducer, err := s.offeringRepo.ListApprovedByProducers(ctx, producerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list producer offerings")
	}

	candidates := make([]entity.Candidate, 0, len(producers))
	for _, producer := range producers {
		offerings := offeringsByProducer[producer.ID]
		if len(offerings) == 0 {
			continue
		}

		c, ok := s.scorer.Evaluate(matching.Pair{
			Producer:        producer,
			Buyer:           buyer,
			Offerings:       offerings,
			CompletedOrders: history[producer.ID],
		})
		if !ok {
			continue
		}
		c.Counterpart = producer.Summary()
		candidates = append(candidates, c)
	}

	return s.finish(ctx, entity.RoleBuyer, candidates, fmt.Sprintf("Found %d potential farmers", len(candidates)), start)
}

// finish ranks the candidates, persists the top ones and records the run.
func (s *matchingService) finish(ctx context.Context, role entity.Role, candidates []entity.Candidate, message string, start time.Time) (*usecase.GenerateMatchesOutput, error) {
	matching.Rank(candidates)

	saved, err := s.saveTop(ctx, candidates)
	s.metrics.IncPairingsUpserted(saved)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	s.metrics.ObserveGeneration(role.String(), len(candidates), elapsed)
	s.log(ctx).Info("Matches generated",
		slog.String("role", role.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("saved", saved),
		slog.Duration("elapsed", elapsed),
	)

	return &usecase.GenerateMatchesOutput{
		Candidates: candidates,
		Saved:      saved,
		Message:    message,
	}, nil
}

// saveTop upserts the best candidates one by one. Upserts that succeeded
// before a failure stay committed.
func (s *matchingService) saveTop(ctx context.Context, candidates []entity.Candidate) (int, error) {
	n := min(len(candidates), s.cfg.SaveTopN)
	now := s.now()

	for i := range candidates[:n] {
		pairing := entity.NewPairingFromCandidate(&candidates[i], now, s.cfg.Validity)
		if _, err := s.pairingRepo.UpsertCandidate(ctx, pairing); err != nil {
			return i, errors.Wrapf(err, "failed to save pairing %d of %d", i+1, n)
		}
	}

	return n, nil
}

// loadParty fetches a party and checks it acts in the expected role.
func (s *matchingService) loadParty(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartyNotFound) {
			return nil, domainerrors.ErrPartyNotFound.WithDetails(fmt.Sprintf("no %s with id %s", role, id))
		}

		return nil, errors.Wrap(err, "failed to find party")
	}

	if party.Role != role {
		return nil, domainerrors.ErrPartyNotFound.WithDetails(fmt.Sprintf("no %s with id %s", role, id))
	}

	return party, nil
}

func emptyOutput(message string) *usecase.GenerateMatchesOutput {
	return &usecase.GenerateMatchesOutput{
		Candidates: []entity.Candidate{},
		Message:    message,
	}
}
