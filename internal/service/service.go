package service

import (
	"github.com/ironforge/finance-server/internal/store"
)

// ChangeEnqueuer accepts change events for background delivery to the remote
// webhook. Satisfied by *outbox.Outbox.
type ChangeEnqueuer interface {
	Enqueue(changeType string, changeData any)
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Balance     *BalanceService
	Dashboard   *DashboardService
}

// NewService creates a Service over the snapshot store and the outbox.
func NewService(snapshot *store.Store, enqueuer ChangeEnqueuer) *Service {
	return &Service{
		Transaction: NewTransactionService(snapshot, enqueuer),
		Balance:     NewBalanceService(snapshot, enqueuer),
		Dashboard:   NewDashboardService(snapshot),
	}
}
