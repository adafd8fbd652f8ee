package finance

import "github.com/shopspring/decimal"

// BucketStats is the revenue/expense/net summary for one bucket.
type BucketStats struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// ProjectionStats carries the likelihood-weighted forecast figures.
type ProjectionStats struct {
	ConfirmedRevenue         decimal.Decimal
	WeightedProjectedRevenue decimal.Decimal
	WeightedMonthlyRecurring decimal.Decimal
	TransactionsByLikelihood map[Likelihood]int
}

// Stats is the dashboard aggregate over the full transaction list and the
// balances snapshot. All figures are unrounded decimals; display rounding is
// the caller's concern.
type Stats struct {
	CurrentCash       decimal.Decimal
	MonthlyBurn       decimal.Decimal
	ProjectedRevenue  decimal.Decimal
	Personal          BucketStats
	Business          BucketStats
	MonthlyRecurring  decimal.Decimal
	BusinessRecurring decimal.Decimal
	Projection        ProjectionStats
}

// ComputeStats builds the dashboard stats from the transaction list and the
// account balances snapshot.
//
// CurrentCash is total revenue minus total expenses plus all three snapshot
// balances. MonthlyBurn is the total of all expense transactions.
// MonthlyRecurring sums each recurring transaction's nominal per-period
// amount once, signed by type; BusinessRecurring restricts that to the
// business bucket.
func ComputeStats(transactions []Transaction, balances AccountBalances) Stats {
	stats := Stats{
		CurrentCash:       decimal.Zero,
		MonthlyBurn:       decimal.Zero,
		MonthlyRecurring:  decimal.Zero,
		BusinessRecurring: decimal.Zero,
		Personal:          zeroBucketStats(),
		Business:          zeroBucketStats(),
		Projection: ProjectionStats{
			ConfirmedRevenue: decimal.Zero,
			TransactionsByLikelihood: map[Likelihood]int{
				LikelihoodConfirmed: 0,
				LikelihoodHigh:      0,
				LikelihoodMedium:    0,
				LikelihoodLow:       0,
			},
		},
	}

	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero

	for _, t := range transactions {
		bucket := &stats.Personal
		if t.Bucket() == BucketBusiness {
			bucket = &stats.Business
		}

		switch t.Type {
		case TypeRevenue:
			totalRevenue = totalRevenue.Add(t.Amount)
			bucket.TotalRevenue = bucket.TotalRevenue.Add(t.Amount)
			if t.Likelihood == LikelihoodConfirmed {
				stats.Projection.ConfirmedRevenue = stats.Projection.ConfirmedRevenue.Add(t.Amount)
			}
		case TypeExpense:
			totalExpenses = totalExpenses.Add(t.Amount)
			bucket.TotalExpenses = bucket.TotalExpenses.Add(t.Amount)
		}

		if t.IsRecurring {
			stats.MonthlyRecurring = stats.MonthlyRecurring.Add(t.SignedAmount())
			if t.Bucket() == BucketBusiness {
				stats.BusinessRecurring = stats.BusinessRecurring.Add(t.SignedAmount())
			}
		}

		if ValidLikelihood(t.Likelihood) {
			stats.Projection.TransactionsByLikelihood[t.Likelihood]++
		} else {
			stats.Projection.TransactionsByLikelihood[LikelihoodConfirmed]++
		}
	}

	stats.Personal.NetIncome = stats.Personal.TotalRevenue.Sub(stats.Personal.TotalExpenses)
	stats.Business.NetIncome = stats.Business.TotalRevenue.Sub(stats.Business.TotalExpenses)

	stats.CurrentCash = totalRevenue.Sub(totalExpenses).
		Add(balances.PersonalBankBalance).
		Add(balances.BusinessBankBalance).
		Add(balances.PersonalCashOnHand)
	stats.MonthlyBurn = totalExpenses
	stats.ProjectedRevenue = WeightedProjectedRevenue(transactions)
	stats.Projection.WeightedProjectedRevenue = stats.ProjectedRevenue
	stats.Projection.WeightedMonthlyRecurring = WeightedMonthlyRecurring(transactions)

	return stats
}

// MonthsToGoal returns the whole months needed to reach goal from current at
// the given monthly change. It returns 0 when the goal is already met and -1
// when the monthly change is zero or negative, meaning the goal is never
// reached.
func MonthsToGoal(current, goal, monthlyChange decimal.Decimal) int {
	if monthlyChange.Sign() <= 0 {
		return -1
	}
	remaining := goal.Sub(current)
	if remaining.Sign() <= 0 {
		return 0
	}
	months := remaining.Div(monthlyChange).Ceil()
	return int(months.IntPart())
}

func zeroBucketStats() BucketStats {
	return BucketStats{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetIncome:     decimal.Zero,
	}
}
