package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// likelihoodMultipliers is the fixed confidence weighting table. It is not
// configurable at runtime.
var likelihoodMultipliers = map[Likelihood]decimal.Decimal{
	LikelihoodConfirmed: decimal.NewFromInt(1),
	LikelihoodHigh:      decimal.NewFromFloat(0.85),
	LikelihoodMedium:    decimal.NewFromFloat(0.55),
	LikelihoodLow:       decimal.NewFromFloat(0.2),
}

// Multiplier returns the weighting factor for a likelihood. Unknown or empty
// values default to 1.00, matching the confirmed default a transaction gets
// at creation time.
func Multiplier(l Likelihood) decimal.Decimal {
	if m, ok := likelihoodMultipliers[l]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// WeightedAmount returns the signed amount scaled by the likelihood
// multiplier. The result is unrounded; callers round at display time.
func WeightedAmount(t Transaction) decimal.Decimal {
	return t.SignedAmount().Mul(Multiplier(t.Likelihood))
}

// WeightedProjectedRevenue sums the weighted amounts of revenue transactions.
// Expenses are excluded: only revenue is weighted for the projected-revenue
// stat.
func WeightedProjectedRevenue(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type != TypeRevenue {
			continue
		}
		total = total.Add(WeightedAmount(t))
	}
	return total
}

// WeightedMonthlyRecurring sums the weighted signed amounts of recurring
// transactions, counting each template's nominal per-period amount once.
// For non-monthly frequencies this is a per-cycle figure, not a true monthly
// total; the name is kept from the original dashboard.
func WeightedMonthlyRecurring(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if !t.IsRecurring {
			continue
		}
		total = total.Add(WeightedAmount(t))
	}
	return total
}

// RangeProjection summarizes the occurrences falling inside a date range:
// revenue and expense totals, the confirmed-vs-potential revenue split, the
// net change, and per-likelihood occurrence counts.
type RangeProjection struct {
	TotalRevenue     decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetChange        decimal.Decimal
	ConfirmedRevenue decimal.Decimal
	PotentialRevenue decimal.Decimal
	ByLikelihood     map[Likelihood]int
}

// ProjectRange builds a RangeProjection over the occurrences with dates in
// [from, to] inclusive. Expense totals are reported as positive magnitudes.
func ProjectRange(occurrences []Occurrence, from, to time.Time) RangeProjection {
	p := RangeProjection{
		TotalRevenue:     decimal.Zero,
		TotalExpenses:    decimal.Zero,
		NetChange:        decimal.Zero,
		ConfirmedRevenue: decimal.Zero,
		PotentialRevenue: decimal.Zero,
		ByLikelihood: map[Likelihood]int{
			LikelihoodConfirmed: 0,
			LikelihoodHigh:      0,
			LikelihoodMedium:    0,
			LikelihoodLow:       0,
		},
	}

	for _, occ := range occurrences {
		if occ.Date.Before(from) || occ.Date.After(to) {
			continue
		}
		switch occ.Type {
		case TypeRevenue:
			p.TotalRevenue = p.TotalRevenue.Add(occ.Amount)
			if occ.Likelihood == LikelihoodConfirmed {
				p.ConfirmedRevenue = p.ConfirmedRevenue.Add(occ.Amount)
			} else {
				p.PotentialRevenue = p.PotentialRevenue.Add(occ.Amount)
			}
		case TypeExpense:
			p.TotalExpenses = p.TotalExpenses.Add(occ.Amount)
		}
		if ValidLikelihood(occ.Likelihood) {
			p.ByLikelihood[occ.Likelihood]++
		}
	}

	p.NetChange = p.TotalRevenue.Sub(p.TotalExpenses)
	return p
}

// WeightedProjectionInRange sums the likelihood-weighted signed amounts of
// the occurrences with dates in [from, to] inclusive.
func WeightedProjectionInRange(occurrences []Occurrence, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, occ := range occurrences {
		if occ.Date.Before(from) || occ.Date.After(to) {
			continue
		}
		total = total.Add(WeightedAmount(occ.Transaction))
	}
	return total
}
