package calendar

import (
	"github.com/ironforge/finance-server/internal/finance"
)

// Event is the API response model for a single calendar occurrence. Recurring
// transactions appear once per occurrence date in range.
type Event struct {
	TransactionID string `json:"transactionId" doc:"Identifier of the source transaction"`
	Date          string `json:"date" doc:"Occurrence date (2006-01-02)"`
	Type          string `json:"type" doc:"revenue or expense"`
	Amount        string `json:"amount" doc:"Non-negative decimal magnitude"`
	SignedAmount  string `json:"signedAmount" doc:"Amount signed by type, expenses negative"`
	Description   string `json:"description" doc:"Free-text description"`
	Category      string `json:"category" doc:"Category name"`
	Likelihood    string `json:"likelihood" doc:"confirmed, high, medium, or low"`
	IsRecurring   bool   `json:"isRecurring" doc:"Whether this event came from a recurring transaction"`
}

// DayTotal is the net movement for one calendar day with at least one event.
type DayTotal struct {
	Date     string `json:"date" doc:"Calendar day (2006-01-02)"`
	Revenue  string `json:"revenue" doc:"Total revenue scheduled on this day"`
	Expenses string `json:"expenses" doc:"Total expenses scheduled on this day"`
	Net      string `json:"net" doc:"Revenue minus expenses for this day"`
}

// fromOccurrence converts a domain occurrence to the response model.
func fromOccurrence(occ finance.Occurrence) Event {
	return Event{
		TransactionID: occ.ID,
		Date:          occ.Date.Format("2006-01-02"),
		Type:          string(occ.Type),
		Amount:        occ.Amount.String(),
		SignedAmount:  occ.SignedAmount().String(),
		Description:   occ.Description,
		Category:      string(occ.Category),
		Likelihood:    string(occ.Likelihood),
		IsRecurring:   occ.IsRecurring,
	}
}
