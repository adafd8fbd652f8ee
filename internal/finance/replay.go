package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceAsOf computes a bucket's balance as of a target date by replaying
// occurrence deltas against the starting balance.
//
// The starting balance is the present-day snapshot, and every bucket-matching
// occurrence dated on or before the target is added to it, signed by type.
// This is a today-anchored replay, not a historical ledger: occurrences that
// predate the snapshot are not subtracted back out, so a past target date is
// treated the same as a future one. That conflation is inherited from the
// original dashboard and is kept deliberately.
//
// An empty occurrence list returns startingBalance unchanged.
func BalanceAsOf(startingBalance decimal.Decimal, target time.Time, occurrences []Occurrence, bucket Bucket) decimal.Decimal {
	balance := startingBalance
	for _, occ := range occurrences {
		if occ.Bucket() != bucket {
			continue
		}
		if occ.Date.After(target) {
			continue
		}
		balance = balance.Add(occ.SignedAmount())
	}
	return balance
}

// MonthEndBalance is the replay evaluated at the last calendar day of the
// month containing date. The quarter view uses it for per-month summaries.
func MonthEndBalance(startingBalance decimal.Decimal, date time.Time, occurrences []Occurrence, bucket Bucket) decimal.Decimal {
	return BalanceAsOf(startingBalance, MonthEnd(date), occurrences, bucket)
}
