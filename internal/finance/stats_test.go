package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleTransactions() []Transaction {
	return []Transaction{
		{Type: TypeRevenue, Amount: decimal.NewFromInt(5000), Category: CategoryBusiness, Likelihood: LikelihoodConfirmed, IsRecurring: true, Frequency: FrequencyMonthly, ScheduledDate: date(2025, time.September, 1)},
		{Type: TypeRevenue, Amount: decimal.NewFromInt(1500), Category: CategoryMarketing, Likelihood: LikelihoodMedium, ScheduledDate: date(2025, time.September, 15)},
		{Type: TypeExpense, Amount: decimal.NewFromInt(800), Category: CategoryRent, Likelihood: LikelihoodConfirmed, IsRecurring: true, Frequency: FrequencyMonthly, ScheduledDate: date(2025, time.September, 1)},
		{Type: TypeRevenue, Amount: decimal.NewFromInt(300), Category: CategoryPersonal, Likelihood: LikelihoodConfirmed, ScheduledDate: date(2025, time.September, 5)},
		{Type: TypeExpense, Amount: decimal.NewFromInt(120), Category: CategoryFood, Likelihood: LikelihoodConfirmed, ScheduledDate: date(2025, time.September, 8)},
	}
}

func sampleBalances() AccountBalances {
	return AccountBalances{
		PersonalBankBalance: decimal.NewFromInt(2000),
		BusinessBankBalance: decimal.NewFromInt(10000),
		PersonalCashOnHand:  decimal.NewFromInt(500),
	}
}

func TestComputeStats_BucketSplits(t *testing.T) {
	stats := ComputeStats(sampleTransactions(), sampleBalances())

	assert.True(t, stats.Business.TotalRevenue.Equal(decimal.NewFromInt(6500)))
	assert.True(t, stats.Business.TotalExpenses.Equal(decimal.NewFromInt(800)))
	assert.True(t, stats.Business.NetIncome.Equal(decimal.NewFromInt(5700)))

	assert.True(t, stats.Personal.TotalRevenue.Equal(decimal.NewFromInt(300)))
	assert.True(t, stats.Personal.TotalExpenses.Equal(decimal.NewFromInt(120)))
	assert.True(t, stats.Personal.NetIncome.Equal(decimal.NewFromInt(180)))
}

func TestComputeStats_CurrentCashAndBurn(t *testing.T) {
	stats := ComputeStats(sampleTransactions(), sampleBalances())

	// revenue 6800 - expenses 920 + balances 12500
	assert.True(t, stats.CurrentCash.Equal(decimal.NewFromInt(18380)))
	assert.True(t, stats.MonthlyBurn.Equal(decimal.NewFromInt(920)))
}

func TestComputeStats_RecurringSums(t *testing.T) {
	stats := ComputeStats(sampleTransactions(), sampleBalances())

	assert.True(t, stats.MonthlyRecurring.Equal(decimal.NewFromInt(4200)))
	assert.True(t, stats.BusinessRecurring.Equal(decimal.NewFromInt(4200)))
}

func TestComputeStats_ProjectionFigures(t *testing.T) {
	stats := ComputeStats(sampleTransactions(), sampleBalances())

	// 5000*1.0 + 1500*0.55 + 300*1.0
	assert.True(t, stats.ProjectedRevenue.Equal(decimal.RequireFromString("6125")))
	assert.True(t, stats.Projection.WeightedProjectedRevenue.Equal(stats.ProjectedRevenue))
	assert.True(t, stats.Projection.ConfirmedRevenue.Equal(decimal.NewFromInt(5300)))
	assert.True(t, stats.Projection.WeightedMonthlyRecurring.Equal(decimal.NewFromInt(4200)))
	assert.Equal(t, 4, stats.Projection.TransactionsByLikelihood[LikelihoodConfirmed])
	assert.Equal(t, 1, stats.Projection.TransactionsByLikelihood[LikelihoodMedium])
}

func TestComputeStats_EmptyInput(t *testing.T) {
	stats := ComputeStats(nil, AccountBalances{
		PersonalBankBalance: decimal.Zero,
		BusinessBankBalance: decimal.Zero,
		PersonalCashOnHand:  decimal.Zero,
	})

	assert.True(t, stats.CurrentCash.Equal(decimal.Zero))
	assert.True(t, stats.MonthlyBurn.Equal(decimal.Zero))
	assert.True(t, stats.ProjectedRevenue.Equal(decimal.Zero))
}

func TestMonthsToGoal(t *testing.T) {
	assert.Equal(t, 8, MonthsToGoal(decimal.NewFromInt(2000), decimal.NewFromInt(10000), decimal.NewFromInt(1000)))
	assert.Equal(t, 0, MonthsToGoal(decimal.NewFromInt(10000), decimal.NewFromInt(10000), decimal.NewFromInt(1000)))
	assert.Equal(t, -1, MonthsToGoal(decimal.NewFromInt(2000), decimal.NewFromInt(10000), decimal.Zero))
	// Partial months round up.
	assert.Equal(t, 3, MonthsToGoal(decimal.NewFromInt(0), decimal.NewFromInt(2500), decimal.NewFromInt(1000)))
}
