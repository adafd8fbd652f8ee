package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/store"
	"github.com/ironforge/finance-server/internal/webhook"
)

// BalanceService handles the account balances snapshot.
type BalanceService struct {
	snapshot *store.Store
	enqueuer ChangeEnqueuer
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(snapshot *store.Store, enqueuer ChangeEnqueuer) *BalanceService {
	return &BalanceService{snapshot: snapshot, enqueuer: enqueuer}
}

// Get returns the current balances snapshot.
func (s *BalanceService) Get(ctx context.Context) finance.AccountBalances {
	return s.snapshot.Balances()
}

// UpdateField sets one balance field optimistically and queues the change
// event carrying the old value, new value, and full updated snapshot.
func (s *BalanceService) UpdateField(ctx context.Context, field string, value decimal.Decimal) (finance.AccountBalances, error) {
	old, updated, err := s.snapshot.UpdateBalanceField(field, value)
	if err != nil {
		return finance.AccountBalances{}, err
	}

	s.enqueuer.Enqueue(webhook.ChangeUpdateAccountBalances, webhook.UpdateBalancesData{
		Field:           field,
		OldValue:        old,
		NewValue:        value,
		UpdatedBalances: webhook.RecordFromBalances(updated),
	})

	return updated, nil
}
