package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func recurringTx(frequency Frequency, scheduled time.Time, end *time.Time) Transaction {
	return Transaction{
		Type:          TypeRevenue,
		Amount:        decimal.NewFromInt(100),
		Description:   "Retainer",
		Category:      CategoryBusiness,
		Likelihood:    LikelihoodConfirmed,
		IsRecurring:   true,
		Frequency:     frequency,
		ScheduledDate: scheduled,
		EndDate:       end,
	}
}

func TestExpand_NonRecurringSingleOccurrence(t *testing.T) {
	scheduled := date(2025, time.September, 1)
	tx := Transaction{
		Type:          TypeExpense,
		Amount:        decimal.NewFromInt(800),
		Category:      CategoryRent,
		ScheduledDate: scheduled,
	}

	occurrences := Expand(tx)

	assert.Len(t, occurrences, 1)
	assert.True(t, occurrences[0].Date.Equal(scheduled))
}

func TestExpand_UnknownFrequencyFailsClosed(t *testing.T) {
	scheduled := date(2025, time.September, 1)
	tx := recurringTx(Frequency("fortnightly-ish"), scheduled, nil)

	occurrences := Expand(tx)

	assert.Len(t, occurrences, 1)
	assert.True(t, occurrences[0].Date.Equal(scheduled))
}

func TestExpand_MonthlyOpenEnded(t *testing.T) {
	tx := recurringTx(FrequencyMonthly, date(2025, time.September, 1), nil)

	occurrences := Expand(tx)

	assert.Len(t, occurrences, 13)
	assert.True(t, occurrences[0].Date.Equal(date(2025, time.September, 1)))
	assert.True(t, occurrences[1].Date.Equal(date(2025, time.October, 1)))
	last := occurrences[len(occurrences)-1].Date
	assert.True(t, last.Equal(date(2026, time.September, 1)))
	for _, occ := range occurrences {
		assert.False(t, occ.Date.After(date(2026, time.September, 1)))
	}
}

func TestExpand_WeeklyOpenEndedCappedAt52(t *testing.T) {
	start := date(2025, time.January, 6)
	tx := recurringTx(FrequencyWeekly, start, nil)

	occurrences := Expand(tx)

	assert.Len(t, occurrences, 52)
	oneYearOut := date(2026, time.January, 6)
	for _, occ := range occurrences {
		assert.False(t, occ.Date.After(oneYearOut))
	}
}

func TestExpand_BiWeeklyStep(t *testing.T) {
	tx := recurringTx(FrequencyBiWeekly, date(2025, time.March, 3), nil)

	occurrences := Expand(tx)

	assert.True(t, occurrences[1].Date.Equal(date(2025, time.March, 17)))
	assert.True(t, occurrences[2].Date.Equal(date(2025, time.March, 31)))
}

func TestExpand_WithEndDateInclusive(t *testing.T) {
	end := date(2025, time.November, 1)
	tx := recurringTx(FrequencyMonthly, date(2025, time.September, 1), &end)

	occurrences := Expand(tx)

	assert.Len(t, occurrences, 3)
	assert.True(t, occurrences[2].Date.Equal(end))
}

func TestExpand_EndDateCapRegardlessOfRange(t *testing.T) {
	// A multi-year weekly recurrence is truncated at the occurrence cap even
	// though the end date allows far more.
	end := date(2030, time.January, 1)
	tx := recurringTx(FrequencyWeekly, date(2025, time.January, 6), &end)

	occurrences := Expand(tx)

	assert.Len(t, occurrences, MaxOccurrences)
}

func TestExpand_MonthlyClampsShortMonths(t *testing.T) {
	// Jan 31 anchors on day 31: February clamps to its last day, March
	// returns to the 31st. The anchor never drifts to a rolled-over date.
	tx := recurringTx(FrequencyMonthly, date(2025, time.January, 31), nil)

	occurrences := Expand(tx)

	assert.True(t, occurrences[1].Date.Equal(date(2025, time.February, 28)))
	assert.True(t, occurrences[2].Date.Equal(date(2025, time.March, 31)))
	assert.True(t, occurrences[3].Date.Equal(date(2025, time.April, 30)))
	assert.True(t, occurrences[4].Date.Equal(date(2025, time.May, 31)))
}

func TestExpand_QuarterlyAndYearlySteps(t *testing.T) {
	quarterly := Expand(recurringTx(FrequencyQuarterly, date(2025, time.January, 15), nil))
	assert.Len(t, quarterly, 5)
	assert.True(t, quarterly[1].Date.Equal(date(2025, time.April, 15)))
	assert.True(t, quarterly[4].Date.Equal(date(2026, time.January, 15)))

	yearly := Expand(recurringTx(FrequencyYearly, date(2025, time.June, 30), nil))
	assert.Len(t, yearly, 2)
	assert.True(t, yearly[1].Date.Equal(date(2026, time.June, 30)))
}

func TestHorizon_LeapDayClamps(t *testing.T) {
	tx := recurringTx(FrequencyMonthly, date(2024, time.February, 29), nil)

	assert.True(t, Horizon(tx).Equal(date(2025, time.February, 28)))
}

func TestOccurrences_RestartableSequence(t *testing.T) {
	tx := recurringTx(FrequencyMonthly, date(2025, time.September, 1), nil)
	seq := Occurrences(tx)

	var first, second []time.Time
	for occ := range seq {
		first = append(first, occ.Date)
	}
	for occ := range seq {
		second = append(second, occ.Date)
	}

	assert.Equal(t, first, second)
}

func TestOccurrences_EarlyBreak(t *testing.T) {
	tx := recurringTx(FrequencyWeekly, date(2025, time.January, 6), nil)

	count := 0
	for range Occurrences(tx) {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestExpandWithin_ViewportBounds(t *testing.T) {
	tx := recurringTx(FrequencyWeekly, date(2025, time.January, 6), nil)

	occurrences := ExpandWithin(tx, date(2025, time.February, 1), date(2025, time.February, 28))

	assert.Len(t, occurrences, 4)
	for _, occ := range occurrences {
		assert.False(t, occ.Date.Before(date(2025, time.February, 1)))
		assert.False(t, occ.Date.After(date(2025, time.February, 28)))
	}
}

func TestExpandWithin_NonRecurringOutsideWindow(t *testing.T) {
	tx := Transaction{
		Type:          TypeRevenue,
		Amount:        decimal.NewFromInt(50),
		Category:      CategoryPersonal,
		ScheduledDate: date(2025, time.June, 10),
	}

	occurrences := ExpandWithin(tx, date(2025, time.July, 1), date(2025, time.July, 31))

	assert.Empty(t, occurrences)
}

func TestExpandAll_MixedTransactions(t *testing.T) {
	oneOff := Transaction{
		Type:          TypeRevenue,
		Amount:        decimal.NewFromInt(1500),
		Category:      CategoryBusiness,
		ScheduledDate: date(2025, time.September, 15),
	}
	end := date(2025, time.October, 1)
	monthly := recurringTx(FrequencyMonthly, date(2025, time.September, 1), &end)

	occurrences := ExpandAll([]Transaction{oneOff, monthly})

	assert.Len(t, occurrences, 3)
}

func TestExpand_SpecScenarioMonthlyRevenue(t *testing.T) {
	// Revenue 5000, confirmed, monthly from 2025-09-01 with no end date.
	tx := recurringTx(FrequencyMonthly, date(2025, time.September, 1), nil)
	tx.Amount = decimal.NewFromInt(5000)

	occurrences := Expand(tx)

	assert.True(t, occurrences[0].Date.Equal(date(2025, time.September, 1)))
	assert.True(t, occurrences[1].Date.Equal(date(2025, time.October, 1)))
	assert.LessOrEqual(t, len(occurrences), 52)
	for _, occ := range occurrences {
		assert.False(t, occ.Date.After(date(2026, time.September, 1)))
	}
}
