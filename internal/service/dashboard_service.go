package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/store"
)

// DashboardService computes read-only views over the snapshot: stats,
// calendar occurrences, balance replay, and range projections.
type DashboardService struct {
	snapshot *store.Store
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(snapshot *store.Store) *DashboardService {
	return &DashboardService{snapshot: snapshot}
}

// Stats returns the dashboard aggregate over the full transaction list.
func (s *DashboardService) Stats(ctx context.Context) finance.Stats {
	return finance.ComputeStats(s.snapshot.Transactions(), s.snapshot.Balances())
}

// CalendarEvents expands every transaction into the occurrences falling in
// [from, to], sorted by date ascending.
func (s *DashboardService) CalendarEvents(ctx context.Context, from, to time.Time) []finance.Occurrence {
	occurrences := finance.ExpandAllWithin(s.snapshot.Transactions(), from, to)
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Date.Before(occurrences[j].Date)
	})
	return occurrences
}

// BalanceAsOf replays occurrence deltas for one bucket up to the target
// date. The personal bucket starts from bank balance plus cash on hand; the
// business bucket starts from the business bank balance.
func (s *DashboardService) BalanceAsOf(ctx context.Context, target time.Time, bucket finance.Bucket) decimal.Decimal {
	balances := s.snapshot.Balances()
	starting := balances.BusinessBankBalance
	if bucket == finance.BucketPersonal {
		starting = balances.PersonalBankBalance.Add(balances.PersonalCashOnHand)
	}

	occurrences := finance.ExpandAll(s.snapshot.Transactions())
	return finance.BalanceAsOf(starting, target, occurrences, bucket)
}

// Projection summarizes the occurrences in [from, to] and returns the
// likelihood-weighted total alongside the raw breakdown.
func (s *DashboardService) Projection(ctx context.Context, from, to time.Time) (finance.RangeProjection, decimal.Decimal) {
	occurrences := finance.ExpandAllWithin(s.snapshot.Transactions(), from, to)
	projection := finance.ProjectRange(occurrences, from, to)
	weighted := finance.WeightedProjectionInRange(occurrences, from, to)
	return projection, weighted
}
