package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "agrimatch/internal/delivery/context"
	"agrimatch/internal/domain/entity"
	domainerrors "agrimatch/internal/domain/errors"
	"agrimatch/internal/domain/repository"
	"agrimatch/internal/domain/service"
	mockRepo "agrimatch/internal/mocks/repository"
	mockSvc "agrimatch/internal/mocks/service"
	"agrimatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pairingMocks struct {
	tx        *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	txRepo    *mockRepo.MockPairingRepository
	pairings  *mockRepo.MockPairingRepository
	parties   *mockRepo.MockPartyRepository
	offerings *mockRepo.MockOfferingRepository
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMatchMetrics
}

func newTestPairingService(t *testing.T) (*pairingService, *pairingMocks) {
	m := &pairingMocks{
		tx:        mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		txRepo:    mockRepo.NewMockPairingRepository(t),
		pairings:  mockRepo.NewMockPairingRepository(t),
		parties:   mockRepo.NewMockPartyRepository(t),
		offerings: mockRepo.NewMockOfferingRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		metrics:   mockSvc.NewMockMatchMetrics(t),
	}

	svc := NewPairingService(PairingServiceParams{
		TxManager:    m.tx,
		PairingRepo:  m.pairings,
		PartyRepo:    m.parties,
		OfferingRepo: m.offerings,
		Publisher:    m.publisher,
		Metrics:      m.metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*pairingService)
	svc.now = fixedClock()

	return svc, m
}

// expectTx runs the transactional closure against the tx-scoped repository.
func (m *pairingMocks) expectTx(ctx context.Context) {
	m.factory.EXPECT().NewPairingRepository().Return(m.txRepo).Maybe()
	m.tx.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func newPendingPairing() *entity.Pairing {
	created := testNow.Add(-time.Hour)
	c := &entity.Candidate{
		ProducerID:       uuid.New(),
		BuyerID:          uuid.New(),
		MatchScore:       82,
		PotentialRevenue: 4000,
	}

	return entity.NewPairingFromCandidate(c, created, 30*24*time.Hour)
}

func TestPairingService_Respond_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		producer   entity.Response
		buyer      entity.Response
		side       entity.Side
		decision   entity.Response
		wantStatus entity.PairingStatus
	}{
		{
			name:       "producer accepts first",
			producer:   entity.ResponsePending,
			buyer:      entity.ResponsePending,
			side:       entity.SideProducer,
			decision:   entity.ResponseAccepted,
			wantStatus: entity.StatusAcceptedByProducer,
		},
		{
			name:       "buyer completes mutual acceptance",
			producer:   entity.ResponseAccepted,
			buyer:      entity.ResponsePending,
			side:       entity.SideBuyer,
			decision:   entity.ResponseAccepted,
			wantStatus: entity.StatusBothAccepted,
		},
		{
			name:       "buyer rejects after both accepted",
			producer:   entity.ResponseAccepted,
			buyer:      entity.ResponseAccepted,
			side:       entity.SideBuyer,
			decision:   entity.ResponseRejected,
			wantStatus: entity.StatusRejected,
		},
		{
			name:       "producer rejects pending",
			producer:   entity.ResponsePending,
			buyer:      entity.ResponsePending,
			side:       entity.SideProducer,
			decision:   entity.ResponseRejected,
			wantStatus: entity.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestPairingService(t)
			ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

			pairing := newPendingPairing()
			pairing.ProducerResponse = tt.producer
			pairing.BuyerResponse = tt.buyer
			pairing.Status = entity.DeriveStatus(tt.producer, tt.buyer)

			m.expectTx(ctx)
			m.txRepo.EXPECT().FindPairingByIDForUpdate(ctx, pairing.ID).Return(pairing, nil)
			m.txRepo.EXPECT().UpdateResponses(ctx, pairing).Return(nil)
			m.metrics.EXPECT().IncResponses(string(tt.side), string(tt.decision), tt.wantStatus.String())
			m.publisher.EXPECT().PublishPairingEvent(ctx, mock.MatchedBy(func(e *service.PairingEvent) bool {
				return e.PairingID == pairing.ID.String() &&
					e.RequestID == "req-42" &&
					e.Status == tt.wantStatus.String() &&
					e.Side == string(tt.side) &&
					e.MatchScore == 82
			})).Return(nil)

			got, err := svc.Respond(ctx, &usecase.RespondInput{
				PairingID: pairing.ID,
				PartyID:   pairing.PartyID(tt.side),
				Side:      tt.side,
				Decision:  tt.decision,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, testNow, got.UpdatedAt)
		})
	}
}

func TestPairingService_Respond_RejectingSideCannotRevive(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()

	pairing := newPendingPairing()
	pairing.BuyerResponse = entity.ResponseRejected
	pairing.Status = entity.StatusRejected
	updatedAt := pairing.UpdatedAt

	m.expectTx(ctx)
	m.txRepo.EXPECT().FindPairingByIDForUpdate(ctx, pairing.ID).Return(pairing, nil)

	got, err := svc.Respond(ctx, &usecase.RespondInput{
		PairingID: pairing.ID,
		PartyID:   pairing.BuyerID,
		Side:      entity.SideBuyer,
		Decision:  entity.ResponseAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)
	assert.Equal(t, entity.ResponseRejected, got.BuyerResponse)
	assert.Equal(t, updatedAt, got.UpdatedAt)

	m.txRepo.AssertNotCalled(t, "UpdateResponses", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "PublishPairingEvent", mock.Anything, mock.Anything)
}

func TestPairingService_Respond_RejectedRecordsOtherSide(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()

	pairing := newPendingPairing()
	pairing.BuyerResponse = entity.ResponseRejected
	pairing.Status = entity.StatusRejected

	m.expectTx(ctx)
	m.txRepo.EXPECT().FindPairingByIDForUpdate(ctx, pairing.ID).Return(pairing, nil)
	m.txRepo.EXPECT().UpdateResponses(ctx, mock.MatchedBy(func(p *entity.Pairing) bool {
		return p.ProducerResponse == entity.ResponseAccepted &&
			p.BuyerResponse == entity.ResponseRejected &&
			p.Status == entity.StatusRejected
	})).Return(nil)
	m.metrics.EXPECT().IncResponses("producer", "accepted", "rejected")
	m.publisher.EXPECT().PublishPairingEvent(ctx, mock.MatchedBy(func(e *service.PairingEvent) bool {
		return e.Side == "producer" && e.Decision == "accepted" && e.Status == "rejected"
	})).Return(nil)

	got, err := svc.Respond(ctx, &usecase.RespondInput{
		PairingID: pairing.ID,
		PartyID:   pairing.ProducerID,
		Side:      entity.SideProducer,
		Decision:  entity.ResponseAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)
	assert.Equal(t, entity.ResponseAccepted, got.ProducerResponse)
	assert.Equal(t, testNow, got.UpdatedAt)
}

func TestPairingService_Respond_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   func(p *entity.Pairing) *usecase.RespondInput
		setup   func(m *pairingMocks, ctx context.Context, p *entity.Pairing)
		wantErr error
	}{
		{
			name: "invalid decision",
			input: func(p *entity.Pairing) *usecase.RespondInput {
				return &usecase.RespondInput{PairingID: p.ID, PartyID: p.ProducerID, Side: entity.SideProducer, Decision: entity.ResponsePending}
			},
			wantErr: domainerrors.ErrInvalidDecision,
		},
		{
			name: "unknown side",
			input: func(p *entity.Pairing) *usecase.RespondInput {
				return &usecase.RespondInput{PairingID: p.ID, PartyID: p.ProducerID, Side: "broker", Decision: entity.ResponseAccepted}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "missing pairing",
			input: func(p *entity.Pairing) *usecase.RespondInput {
				return &usecase.RespondInput{PairingID: p.ID, PartyID: p.BuyerID, Side: entity.SideBuyer, Decision: entity.ResponseAccepted}
			},
			setup: func(m *pairingMocks, ctx context.Context, p *entity.Pairing) {
				m.expectTx(ctx)
				m.txRepo.EXPECT().FindPairingByIDForUpdate(ctx, p.ID).Return(nil, repository.ErrPairingNotFound)
			},
			wantErr: domainerrors.ErrPairingNotFound,
		},
		{
			name: "caller is not the party on that side",
			input: func(p *entity.Pairing) *usecase.RespondInput {
				return &usecase.RespondInput{PairingID: p.ID, PartyID: p.ProducerID, Side: entity.SideBuyer, Decision: entity.ResponseAccepted}
			},
			setup: func(m *pairingMocks, ctx context.Context, p *entity.Pairing) {
				m.expectTx(ctx)
				m.txRepo.EXPECT().FindPairingByIDForUpdate(ctx, p.ID).Return(p, nil)
			},
			wantErr: domainerrors.ErrPairingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestPairingService(t)
			ctx := context.Background()
			pairing := newPendingPairing()
			if tt.setup != nil {
				tt.setup(m, ctx, pairing)
			}

			got, err := svc.Respond(ctx, tt.input(pairing))
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			m.txRepo.AssertNotCalled(t, "UpdateResponses", mock.Anything, mock.Anything)
		})
	}
}

func TestPairingService_Respond_PublishFailureIsTolerated(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()
	pairing := newPendingPairing()

	m.expectTx(ctx)
	m.txRepo.EXPECT().FindPairingByIDForUpdate(ctx, pairing.ID).Return(pairing, nil)
	m.txRepo.EXPECT().UpdateResponses(ctx, pairing).Return(nil)
	m.metrics.EXPECT().IncResponses("buyer", "accepted", "accepted_by_buyer")
	m.publisher.EXPECT().PublishPairingEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	got, err := svc.Respond(ctx, &usecase.RespondInput{
		PairingID: pairing.ID,
		PartyID:   pairing.BuyerID,
		Side:      entity.SideBuyer,
		Decision:  entity.ResponseAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAcceptedByBuyer, got.Status)
}

func TestPairingService_Respond_UpdateFailureRollsBack(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()
	pairing := newPendingPairing()

	m.expectTx(ctx)
	m.txRepo.EXPECT().FindPairingByIDForUpdate(ctx, pairing.ID).Return(pairing, nil)
	m.txRepo.EXPECT().UpdateResponses(ctx, pairing).Return(errors.New("deadlock detected"))

	got, err := svc.Respond(ctx, &usecase.RespondInput{
		PairingID: pairing.ID,
		PartyID:   pairing.ProducerID,
		Side:      entity.SideProducer,
		Decision:  entity.ResponseAccepted,
	})
	assert.Nil(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
	m.publisher.AssertNotCalled(t, "PublishPairingEvent", mock.Anything, mock.Anything)
}

func TestPairingService_ListMatches(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()
	partyID := uuid.New()
	want := []*entity.Pairing{newPendingPairing()}

	m.pairings.EXPECT().ListActiveBySide(ctx, entity.SideBuyer, partyID, testNow, svc.cfg.ListLimit).Return(want, nil)

	got, err := svc.ListMatches(ctx, entity.SideBuyer, partyID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.ListMatches(ctx, "admin", partyID)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPairingService_GetDetails(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()

	producer := newProducer("Nakuru")
	buyer := newBuyer("Nairobi", nil)
	first, second, gone := maizeOffering(producer.ID), maizeOffering(producer.ID), maizeOffering(producer.ID)
	second.Name = "Yellow Maize"

	pairing := newPendingPairing()
	pairing.ProducerID = producer.ID
	pairing.BuyerID = buyer.ID
	pairing.MatchedOfferings = []entity.MatchedOffering{first.Snapshot(), gone.Snapshot(), second.Snapshot()}

	m.pairings.EXPECT().FindPairingByID(ctx, pairing.ID).Return(pairing, nil)
	m.parties.EXPECT().FindPartiesByIDs(mock.Anything, []uuid.UUID{producer.ID, buyer.ID}).
		Return([]*entity.Party{buyer, producer}, nil)
	m.offerings.EXPECT().FindOfferingsByIDs(mock.Anything, []uuid.UUID{first.ID, gone.ID, second.ID}).
		Return([]entity.Offering{second, first}, nil)

	got, err := svc.GetDetails(ctx, pairing.ID, buyer.ID)
	require.NoError(t, err)

	assert.Equal(t, pairing, got.Pairing)
	assert.Equal(t, producer.Summary(), got.Producer)
	assert.Equal(t, buyer.Summary(), got.Buyer)
	require.Len(t, got.Offerings, 2)
	assert.Equal(t, first.ID, got.Offerings[0].ID)
	assert.Equal(t, second.ID, got.Offerings[1].ID)
}

func TestPairingService_GetDetails_MissingPartyKeepsID(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()
	pairing := newPendingPairing()

	m.pairings.EXPECT().FindPairingByID(ctx, pairing.ID).Return(pairing, nil)
	m.parties.EXPECT().FindPartiesByIDs(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.GetDetails(ctx, pairing.ID, pairing.ProducerID)
	require.NoError(t, err)
	assert.Equal(t, pairing.BuyerID, got.Buyer.ID)
	assert.Equal(t, entity.RoleBuyer, got.Buyer.Role)
	assert.Empty(t, got.Offerings)
	m.offerings.AssertNotCalled(t, "FindOfferingsByIDs", mock.Anything, mock.Anything)
}

func TestPairingService_GetDetails_Outsider(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()
	pairing := newPendingPairing()

	m.pairings.EXPECT().FindPairingByID(ctx, pairing.ID).Return(pairing, nil)

	got, err := svc.GetDetails(ctx, pairing.ID, uuid.New())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPairingNotFound)
}

func TestPairingService_GetStats(t *testing.T) {
	svc, m := newTestPairingService(t)
	ctx := context.Background()
	partyID := uuid.New()
	want := &entity.PairingStats{TotalMatches: 4, BothAccepted: 1, Pending: 2, Rejected: 1, AcceptanceRate: 25}

	m.pairings.EXPECT().StatsByParty(ctx, partyID, testNow).Return(want, nil)

	got, err := svc.GetStats(ctx, partyID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
