package transaction

import (
	"time"

	"github.com/ironforge/finance-server/internal/finance"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID            string `json:"id" doc:"Opaque transaction identifier"`
	Type          string `json:"type" doc:"revenue or expense"`
	Amount        string `json:"amount" doc:"Non-negative decimal magnitude"`
	Description   string `json:"description" doc:"Free-text description"`
	Category      string `json:"category" doc:"Category name"`
	Likelihood    string `json:"likelihood" doc:"confirmed, high, medium, or low"`
	IsRecurring   bool   `json:"isRecurring" doc:"Whether the transaction repeats"`
	Frequency     string `json:"frequency,omitempty" doc:"Recurrence interval, recurring only"`
	ScheduledDate string `json:"scheduledDate" doc:"Transaction date, or first occurrence date if recurring"`
	EndDate       string `json:"endDate,omitempty" doc:"Last possible occurrence date, recurring only"`
	CreatedAt     string `json:"createdAt,omitempty" doc:"RFC3339 creation timestamp"`
}

// fromDomain converts the domain model to the response model.
func fromDomain(tx finance.Transaction) Transaction {
	out := Transaction{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount.String(),
		Description:   tx.Description,
		Category:      string(tx.Category),
		Likelihood:    string(tx.Likelihood),
		IsRecurring:   tx.IsRecurring,
		ScheduledDate: tx.ScheduledDate.Format("2006-01-02"),
	}
	if tx.IsRecurring {
		out.Frequency = string(tx.Frequency)
	}
	if tx.EndDate != nil && !tx.EndDate.IsZero() {
		out.EndDate = tx.EndDate.Format("2006-01-02")
	}
	if !tx.CreatedAt.IsZero() {
		out.CreatedAt = tx.CreatedAt.Format(time.RFC3339)
	}
	return out
}
