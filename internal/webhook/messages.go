package webhook

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
)

// Change types understood by the remote automation flow.
const (
	ChangeAddTransaction        = "ADD_TRANSACTION"
	ChangeDeleteTransaction     = "DELETE_TRANSACTION"
	ChangeUpdateAccountBalances = "UPDATE_ACCOUNT_BALANCES"
)

// ChangeEvent is the payload posted to the change endpoint.
type ChangeEvent struct {
	ChangeType string    `json:"changeType"`
	ChangeData any       `json:"changeData"`
	Timestamp  time.Time `json:"timestamp"`
}

// AddTransactionData is the change payload for a newly created transaction.
type AddTransactionData struct {
	Transaction TransactionRecord `json:"transaction"`
}

// DeleteTransactionData carries the deleted id plus the full record so the
// remote flow can archive it.
type DeleteTransactionData struct {
	TransactionID      string             `json:"transactionId"`
	DeletedTransaction *TransactionRecord `json:"deletedTransaction,omitempty"`
}

// UpdateBalancesData is the change payload for a single balance field update.
type UpdateBalancesData struct {
	Field           string          `json:"field"`
	OldValue        decimal.Decimal `json:"oldValue"`
	NewValue        decimal.Decimal `json:"newValue"`
	UpdatedBalances BalancesRecord  `json:"updatedBalances"`
}

// Snapshot is the deserialized state the webhook holds: the full transaction
// list plus the account balances.
type Snapshot struct {
	Transactions []finance.Transaction
	Balances     finance.AccountBalances
}

// snapshotEnvelope mirrors the webhook's {success, data} response shape.
type snapshotEnvelope struct {
	Success bool         `json:"success"`
	Data    snapshotData `json:"data"`
}

type snapshotData struct {
	Transactions    []TransactionRecord `json:"transactions"`
	AccountBalances BalancesRecord      `json:"accountBalances"`
}

// TransactionRecord is the wire form of a transaction. Dates travel as
// strings ("2006-01-02" or RFC3339) and amounts as JSON numbers or numeric
// strings; both forms appear in data written by earlier versions of the
// dashboard.
type TransactionRecord struct {
	ID            json.RawMessage `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Likelihood    string          `json:"likelihood,omitempty"`
	IsRecurring   bool            `json:"isRecurring"`
	Frequency     string          `json:"frequency,omitempty"`
	ScheduledDate string          `json:"scheduledDate"`
	EndDate       string          `json:"endDate,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
}

// BalancesRecord is the wire form of the account balances snapshot.
type BalancesRecord struct {
	PersonalBankBalance decimal.Decimal `json:"personalBankBalance"`
	BusinessBankBalance decimal.Decimal `json:"businessBankBalance"`
	PersonalCashOnHand  decimal.Decimal `json:"personalCashOnHand"`
}

func (d snapshotData) toSnapshot() *Snapshot {
	transactions := make([]finance.Transaction, 0, len(d.Transactions))
	for _, rec := range d.Transactions {
		transactions = append(transactions, rec.toTransaction())
	}
	return &Snapshot{
		Transactions: transactions,
		Balances: finance.AccountBalances{
			PersonalBankBalance: d.AccountBalances.PersonalBankBalance,
			BusinessBankBalance: d.AccountBalances.BusinessBankBalance,
			PersonalCashOnHand:  d.AccountBalances.PersonalCashOnHand,
		},
	}
}

// toTransaction converts a wire record to the domain model, defaulting a
// missing likelihood to confirmed the same way the original dashboard did for
// rows created before the likelihood field existed.
func (rec TransactionRecord) toTransaction() finance.Transaction {
	tx := finance.Transaction{
		ID:            rawID(rec.ID),
		Type:          finance.Type(rec.Type),
		Amount:        rec.Amount,
		Description:   rec.Description,
		Category:      finance.Category(rec.Category),
		Likelihood:    finance.Likelihood(rec.Likelihood),
		IsRecurring:   rec.IsRecurring,
		Frequency:     finance.Frequency(rec.Frequency),
		ScheduledDate: parseDate(rec.ScheduledDate),
		CreatedAt:     parseDate(rec.CreatedAt),
	}
	if tx.Likelihood == "" {
		tx.Likelihood = finance.LikelihoodConfirmed
	}
	if rec.EndDate != "" {
		end := parseDate(rec.EndDate)
		if !end.IsZero() {
			tx.EndDate = &end
		}
	}
	return tx
}

// RecordFromTransaction converts a domain transaction to its wire form.
func RecordFromTransaction(tx finance.Transaction) TransactionRecord {
	rec := TransactionRecord{
		ID:            json.RawMessage(`"` + tx.ID + `"`),
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Description:   tx.Description,
		Category:      string(tx.Category),
		Likelihood:    string(tx.Likelihood),
		IsRecurring:   tx.IsRecurring,
		ScheduledDate: tx.ScheduledDate.Format("2006-01-02"),
	}
	if tx.IsRecurring {
		rec.Frequency = string(tx.Frequency)
	}
	if tx.EndDate != nil && !tx.EndDate.IsZero() {
		rec.EndDate = tx.EndDate.Format("2006-01-02")
	}
	if !tx.CreatedAt.IsZero() {
		rec.CreatedAt = tx.CreatedAt.Format(time.RFC3339)
	}
	return rec
}

// RecordFromBalances converts domain balances to their wire form.
func RecordFromBalances(b finance.AccountBalances) BalancesRecord {
	return BalancesRecord{
		PersonalBankBalance: b.PersonalBankBalance,
		BusinessBankBalance: b.BusinessBankBalance,
		PersonalCashOnHand:  b.PersonalCashOnHand,
	}
}

// rawID renders the id field as an opaque string whether the webhook sent a
// JSON string or a bare number (the original UI used epoch-millisecond ids).
func rawID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// parseDate accepts the two date encodings seen in webhook data: plain
// calendar dates and full RFC3339 timestamps. Unparseable input yields the
// zero time rather than an error; the engine fails closed on it.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
