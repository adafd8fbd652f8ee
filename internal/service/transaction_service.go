package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/store"
	"github.com/ironforge/finance-server/internal/webhook"
)

const defaultLimit = 50

var (
	ErrInvalidType       = errors.New("type must be revenue or expense")
	ErrNegativeAmount    = errors.New("amount must be a non-negative magnitude")
	ErrEmptyDescription  = errors.New("description is required")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownLikelihood = errors.New("unknown likelihood")
	ErrUnknownFrequency  = errors.New("unknown frequency")
	ErrMissingDate       = errors.New("scheduledDate is required")
	ErrEndBeforeStart    = errors.New("endDate must not precede scheduledDate")
)

// CreateTransaction is the validated input for a new transaction. Likelihood
// defaults to confirmed when empty; frequency and end date only matter when
// IsRecurring is set.
type CreateTransaction struct {
	Type          finance.Type
	Amount        decimal.Decimal
	Description   string
	Category      finance.Category
	Likelihood    finance.Likelihood
	IsRecurring   bool
	Frequency     finance.Frequency
	ScheduledDate time.Time
	EndDate       *time.Time
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	snapshot *store.Store
	enqueuer ChangeEnqueuer
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(snapshot *store.Store, enqueuer ChangeEnqueuer) *TransactionService {
	return &TransactionService{snapshot: snapshot, enqueuer: enqueuer}
}

// Create validates the input, commits the transaction to the local snapshot,
// and queues the change event. The local write is optimistic: it is not
// rolled back if webhook delivery later fails.
func (s *TransactionService) Create(ctx context.Context, input CreateTransaction) (finance.Transaction, error) {
	if err := validateCreate(&input); err != nil {
		return finance.Transaction{}, err
	}

	tx := finance.Transaction{
		ID:            uuid.Must(uuid.NewV4()).String(),
		Type:          input.Type,
		Amount:        input.Amount,
		Description:   strings.TrimSpace(input.Description),
		Category:      input.Category,
		Likelihood:    input.Likelihood,
		IsRecurring:   input.IsRecurring,
		ScheduledDate: input.ScheduledDate,
		CreatedAt:     time.Now().UTC(),
	}
	if input.IsRecurring {
		tx.Frequency = input.Frequency
		tx.EndDate = input.EndDate
	}

	s.snapshot.AddTransaction(tx)
	s.enqueuer.Enqueue(webhook.ChangeAddTransaction, webhook.AddTransactionData{
		Transaction: webhook.RecordFromTransaction(tx),
	})

	return tx, nil
}

// Delete removes the transaction by id and queues the change event with the
// full deleted record so the remote flow can archive it.
func (s *TransactionService) Delete(ctx context.Context, id string) (finance.Transaction, error) {
	deleted, err := s.snapshot.DeleteTransaction(id)
	if err != nil {
		return finance.Transaction{}, err
	}

	record := webhook.RecordFromTransaction(deleted)
	s.enqueuer.Enqueue(webhook.ChangeDeleteTransaction, webhook.DeleteTransactionData{
		TransactionID:      id,
		DeletedTransaction: &record,
	})

	return deleted, nil
}

// List returns the full transaction list, newest first.
func (s *TransactionService) List(ctx context.Context) []finance.Transaction {
	return s.snapshot.Transactions()
}

// TransactionCursor carries pagination state between list calls. The max
// creation time is locked in on the first page so transactions added while
// paging do not shift later pages.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, cursor *TransactionCursor) ([]finance.Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	all := s.snapshot.Transactions()
	stable := all
	if maxCreationTime != nil {
		stable = make([]finance.Transaction, 0, len(all))
		for _, tx := range all {
			if tx.CreatedAt.After(*maxCreationTime) {
				continue
			}
			stable = append(stable, tx)
		}
	}

	if offset >= len(stable) {
		return nil, nil, nil
	}
	rows := stable[offset:]

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := stable[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	page := make([]finance.Transaction, len(rows))
	copy(page, rows)

	return page, nextCursor, nil
}

// validateCreate enforces the input contract and fills defaults. API input is
// rejected on malformed enum values; fail-closed leniency is reserved for
// data arriving from the webhook, which this server does not author.
func validateCreate(input *CreateTransaction) error {
	if input.Type != finance.TypeRevenue && input.Type != finance.TypeExpense {
		return ErrInvalidType
	}
	if input.Amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(input.Description) == "" {
		return ErrEmptyDescription
	}
	if !finance.ValidCategory(input.Category) {
		return ErrUnknownCategory
	}
	if input.Likelihood == "" {
		input.Likelihood = finance.LikelihoodConfirmed
	}
	if !finance.ValidLikelihood(input.Likelihood) {
		return ErrUnknownLikelihood
	}
	if input.ScheduledDate.IsZero() {
		return ErrMissingDate
	}
	if input.IsRecurring {
		if !finance.ValidFrequency(input.Frequency) {
			return ErrUnknownFrequency
		}
		if input.EndDate != nil && input.EndDate.Before(input.ScheduledDate) {
			return ErrEndBeforeStart
		}
	}
	return nil
}
