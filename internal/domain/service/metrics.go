package service

import "time"

// MatchMetrics records matching engine activity.
type MatchMetrics interface {
	ObserveGeneration(role string, candidates int, duration time.Duration)
	IncPairingsUpserted(count int)
	IncResponses(side, decision, status string)
	AddPairingsSwept(count int64)
}
