package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		producer Response
		buyer    Response
		want     PairingStatus
	}{
		{ResponsePending, ResponsePending, StatusPending},
		{ResponseAccepted, ResponsePending, StatusAcceptedByProducer},
		{ResponsePending, ResponseAccepted, StatusAcceptedByBuyer},
		{ResponseAccepted, ResponseAccepted, StatusBothAccepted},
		{ResponseRejected, ResponsePending, StatusRejected},
		{ResponseAccepted, ResponseRejected, StatusRejected},
		{ResponseRejected, ResponseAccepted, StatusRejected},
	}

	for _, tt := range tests {
		t.Run(string(tt.producer)+"/"+string(tt.buyer), func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.producer, tt.buyer))
		})
	}
}

func newPendingPairing(now time.Time) *Pairing {
	return NewPairingFromCandidate(&Candidate{
		ProducerID: uuid.New(),
		BuyerID:    uuid.New(),
		MatchScore: 61,
	}, now, 30*24*time.Hour)
}

func TestPairing_BothAcceptIndependentOfOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for _, order := range [][]Side{{SideProducer, SideBuyer}, {SideBuyer, SideProducer}} {
		p := newPendingPairing(now)

		assert.True(t, p.Respond(order[0], ResponseAccepted, now.Add(time.Minute)))
		assert.NotEqual(t, StatusBothAccepted, p.Status)

		assert.True(t, p.Respond(order[1], ResponseAccepted, now.Add(2*time.Minute)))
		assert.Equal(t, StatusBothAccepted, p.Status)
		assert.Equal(t, now.Add(2*time.Minute), p.UpdatedAt)
	}
}

func TestPairing_RejectWinsFromAnyState(t *testing.T) {
	now := time.Now()

	p := newPendingPairing(now)
	p.Respond(SideProducer, ResponseAccepted, now)
	p.Respond(SideBuyer, ResponseAccepted, now)
	assert.Equal(t, StatusBothAccepted, p.Status)

	assert.True(t, p.Respond(SideBuyer, ResponseRejected, now))
	assert.Equal(t, StatusRejected, p.Status)
}

func TestPairing_RejectedNeverLeavesRejected(t *testing.T) {
	now := time.Now()
	p := newPendingPairing(now)
	p.Respond(SideProducer, ResponseRejected, now)

	later := now.Add(time.Hour)
	assert.False(t, p.Respond(SideProducer, ResponseAccepted, later))

	assert.Equal(t, StatusRejected, p.Status)
	assert.Equal(t, ResponseRejected, p.ProducerResponse)
	assert.Equal(t, ResponsePending, p.BuyerResponse)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestPairing_RejectedStillRecordsOtherSide(t *testing.T) {
	now := time.Now()
	p := newPendingPairing(now)
	p.Respond(SideProducer, ResponseRejected, now)

	later := now.Add(time.Hour)
	assert.True(t, p.Respond(SideBuyer, ResponseAccepted, later))

	assert.Equal(t, StatusRejected, p.Status)
	assert.Equal(t, ResponseRejected, p.ProducerResponse)
	assert.Equal(t, ResponseAccepted, p.BuyerResponse)
	assert.Equal(t, later, p.UpdatedAt)

	assert.True(t, p.Respond(SideBuyer, ResponseRejected, later))
	assert.Equal(t, StatusRejected, p.Status)
	assert.False(t, p.Respond(SideBuyer, ResponseAccepted, later))
	assert.Equal(t, ResponseRejected, p.BuyerResponse)
}

func TestPairing_RejectedWithoutRejectionStaysRejected(t *testing.T) {
	now := time.Now()
	p := newPendingPairing(now)
	p.Status = StatusRejected

	assert.True(t, p.Respond(SideProducer, ResponseAccepted, now))
	assert.True(t, p.Respond(SideBuyer, ResponseAccepted, now))
	assert.Equal(t, StatusRejected, p.Status)
}

func TestNewPairingFromCandidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := newPendingPairing(now)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, ResponsePending, p.ProducerResponse)
	assert.Equal(t, ResponsePending, p.BuyerResponse)
	assert.Equal(t, now.Add(30*24*time.Hour), p.ExpiresAt)
	assert.False(t, p.IsExpired(now))
	assert.True(t, p.IsExpired(now.Add(31*24*time.Hour)))
}

func TestPairing_PartyIDAndInvolves(t *testing.T) {
	p := newPendingPairing(time.Now())

	assert.Equal(t, p.ProducerID, p.PartyID(SideProducer))
	assert.Equal(t, p.BuyerID, p.PartyID(SideBuyer))
	assert.True(t, p.Involves(p.BuyerID))
	assert.False(t, p.Involves(uuid.New()))
}

func TestStatusTerminality(t *testing.T) {
	assert.True(t, StatusBothAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	for _, s := range NonTerminalStatuses() {
		assert.False(t, s.IsTerminal(), s)
	}
}
