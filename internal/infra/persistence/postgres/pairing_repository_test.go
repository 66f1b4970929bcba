package postgres

import (
	"context"
	"testing"
	"time"

	"agrimatch/internal/domain/entity"
	"agrimatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// sqlRecorder keeps the last statement GORM built in dry run mode.
type sqlRecorder struct {
	sql  string
	vars []any
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=agrimatch dbname=agrimatch sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	rec := &sqlRecorder{}
	capture := func(d *gorm.DB) {
		rec.sql = d.Statement.SQL.String()
		rec.vars = d.Statement.Vars
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:capture_delete", capture))
	require.NoError(t, db.Callback().Row().After("gorm:row").Register("test:capture_row", capture))

	return db, rec
}

func TestPairingRepository_UpsertCandidateSQL(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewPairingRepository(db)

	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	pairing := entity.NewPairingFromCandidate(&entity.Candidate{
		ProducerID: uuid.New(),
		BuyerID:    uuid.New(),
		MatchScore: 77,
	}, now, 30*24*time.Hour)

	_, err := repo.UpsertCandidate(context.Background(), pairing)
	require.NoError(t, err)

	assert.Contains(t, rec.sql, `INSERT INTO "pairings"`)
	assert.Contains(t, rec.sql, `ON CONFLICT ("producer_id","buyer_id")`)
	assert.Contains(t, rec.sql, `WHERE status <> 'rejected' DO UPDATE SET`)
	assert.Contains(t, rec.sql, `"match_score"="excluded"."match_score"`)
	assert.Contains(t, rec.sql, `"matched_offerings"="excluded"."matched_offerings"`)
	assert.Contains(t, rec.sql, `RETURNING *`)

	// Existing responses, status and validity window survive a regeneration.
	for _, col := range []string{"status", "producer_response", "buyer_response", "expires_at", "created_at"} {
		assert.NotContains(t, rec.sql, `"`+col+`"="excluded"."`+col+`"`)
	}
}

func TestPairingRepository_FindForUpdateSQL(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewPairingRepository(db)
	id := uuid.New()

	_, err := repo.FindPairingByIDForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, rec.sql, `FROM "pairings" WHERE id = $1`)
	assert.Contains(t, rec.sql, `FOR UPDATE`)
	assert.Contains(t, rec.vars, id)

	_, err = repo.FindPairingByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotContains(t, rec.sql, `FOR UPDATE`)
}

func TestPairingRepository_ListActiveBySideSQL(t *testing.T) {
	tests := []struct {
		side   entity.Side
		column string
	}{
		{side: entity.SideProducer, column: "producer_id = $1"},
		{side: entity.SideBuyer, column: "buyer_id = $1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.side), func(t *testing.T) {
			db, rec := newDryRunDB(t)
			repo := NewPairingRepository(db)

			_, err := repo.ListActiveBySide(context.Background(), tt.side, uuid.New(), time.Now(), 20)
			require.NoError(t, err)
			assert.Contains(t, rec.sql, tt.column+" AND expires_at >= $2")
			assert.Contains(t, rec.sql, "ORDER BY match_score DESC, created_at DESC LIMIT $3")
		})
	}
}

func TestPairingRepository_DeleteExpiredSQL(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewPairingRepository(db)
	now := time.Now()

	deleted, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Contains(t, rec.sql, `DELETE FROM "pairings" WHERE expires_at < $1 AND status IN ($2,$3,$4)`)
	assert.Equal(t, []any{now, "pending", "accepted_by_producer", "accepted_by_buyer"}, rec.vars)
}

func TestPairingRepository_UpdateResponsesSQL(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewPairingRepository(db)
	pairing := &entity.Pairing{
		ID:               uuid.New(),
		Status:           entity.StatusAcceptedByBuyer,
		ProducerResponse: entity.ResponsePending,
		BuyerResponse:    entity.ResponseAccepted,
		UpdatedAt:        time.Now(),
	}

	// Dry runs affect no rows, which reads as a missing pairing.
	err := repo.UpdateResponses(context.Background(), pairing)
	assert.ErrorIs(t, err, repository.ErrPairingNotFound)
	assert.Contains(t, rec.sql, `UPDATE "pairings" SET`)
	assert.Contains(t, rec.sql, `"status"=`)
	assert.Contains(t, rec.vars, "accepted_by_buyer")
	assert.NotContains(t, rec.sql, `"match_score"`)
}

func TestPairingRepository_StatsByPartySQL(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewPairingRepository(db)
	partyID := uuid.New()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	// Scan needs real rows, so a dry run stops after building the statement.
	_, err := repo.StatsByParty(context.Background(), partyID, now)
	require.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)

	// Totals and pending only count pairings still inside their window.
	assert.Contains(t, rec.sql, `COUNT(*) FILTER (WHERE expires_at >= $1) AS total_matches`)
	assert.Contains(t, rec.sql, `COUNT(*) FILTER (WHERE status = $3 AND expires_at >= $4) AS pending`)
	// Accepted and rejected counts ignore expiry.
	assert.Contains(t, rec.sql, `COUNT(*) FILTER (WHERE status = $2) AS both_accepted`)
	assert.Contains(t, rec.sql, `COUNT(*) FILTER (WHERE status = $5) AS rejected`)
	// Revenue sums only mutually accepted pairings.
	assert.Contains(t, rec.sql, `COALESCE(SUM(potential_revenue) FILTER (WHERE status = $6), 0) AS total_potential_revenue`)
	// The party is matched on either side.
	assert.Contains(t, rec.sql, `FROM "pairings" WHERE producer_id = $7 OR buyer_id = $8`)

	assert.Equal(t, []any{
		now,
		"both_accepted",
		"pending", now,
		"rejected",
		"both_accepted",
		partyID, partyID,
	}, rec.vars)
}

func TestAcceptanceRate(t *testing.T) {
	tests := []struct {
		accepted, total int64
		want            float64
	}{
		{accepted: 0, total: 0, want: 0},
		{accepted: 1, total: 4, want: 25},
		{accepted: 1, total: 3, want: 33.33},
		{accepted: 2, total: 3, want: 66.67},
		{accepted: 5, total: 5, want: 100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, acceptanceRate(tt.accepted, tt.total), 1e-9)
	}
}
