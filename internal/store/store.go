// Package store holds the live in-memory snapshot of transactions and
// account balances. The remote webhook owns persistence; this store is the
// optimistic local copy the API serves from, mutated before delivery of the
// corresponding change event is confirmed.
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
)

// Balance field names accepted by UpdateBalanceField. They match the wire
// field names the webhook flow expects.
const (
	FieldPersonalBankBalance = "personalBankBalance"
	FieldBusinessBankBalance = "businessBankBalance"
	FieldPersonalCashOnHand  = "personalCashOnHand"
)

var (
	ErrNotFound     = errors.New("store: transaction not found")
	ErrUnknownField = errors.New("store: unknown balance field")
)

// Store is the guarded snapshot. Zero value is usable; Hydrate replaces the
// contents wholesale.
type Store struct {
	mu           sync.RWMutex
	transactions []finance.Transaction
	balances     finance.AccountBalances
}

// NewStore returns an empty store with zeroed balances.
func NewStore() *Store {
	return &Store{
		balances: finance.AccountBalances{
			PersonalBankBalance: decimal.Zero,
			BusinessBankBalance: decimal.Zero,
			PersonalCashOnHand:  decimal.Zero,
		},
	}
}

// Hydrate replaces the snapshot with freshly fetched data.
func (s *Store) Hydrate(transactions []finance.Transaction, balances finance.AccountBalances) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]finance.Transaction(nil), transactions...)
	s.balances = balances
}

// Transactions returns a copy of the transaction list, newest first by
// creation time (ties keep insertion order).
func (s *Store) Transactions() []finance.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]finance.Transaction(nil), s.transactions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AddTransaction prepends a transaction to the snapshot.
func (s *Store) AddTransaction(tx finance.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]finance.Transaction{tx}, s.transactions...)
}

// DeleteTransaction removes a transaction by id and returns the removed
// record. ErrNotFound if no transaction has that id.
func (s *Store) DeleteTransaction(id string) (finance.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.transactions {
		if tx.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return tx, nil
		}
	}
	return finance.Transaction{}, ErrNotFound
}

// Balances returns the current balances snapshot.
func (s *Store) Balances() finance.AccountBalances {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances
}

// UpdateBalanceField sets one balance field and returns the previous and new
// snapshot values. ErrUnknownField for a field name outside the fixed three.
func (s *Store) UpdateBalanceField(field string, value decimal.Decimal) (old decimal.Decimal, updated finance.AccountBalances, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldPersonalBankBalance:
		old = s.balances.PersonalBankBalance
		s.balances.PersonalBankBalance = value
	case FieldBusinessBankBalance:
		old = s.balances.BusinessBankBalance
		s.balances.BusinessBankBalance = value
	case FieldPersonalCashOnHand:
		old = s.balances.PersonalCashOnHand
		s.balances.PersonalCashOnHand = value
	default:
		return decimal.Zero, s.balances, ErrUnknownField
	}

	return old, s.balances, nil
}
