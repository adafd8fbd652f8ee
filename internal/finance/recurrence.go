package finance

import (
	"iter"
	"time"
)

// MaxOccurrences bounds eager expansion of a single transaction. It is a
// safety valve against runaway expansion, not a frequency-accurate guarantee:
// a weekly transaction with a multi-year end date is truncated at this count.
const MaxOccurrences = 52

// Horizon returns the last date a transaction's recurrence may reach. With an
// end date the horizon is the end date itself. Without one the recurrence is
// open-ended and the horizon is capped at one year past the scheduled date
// (same month and day, clamped for short months). The cap is a safety bound,
// not a business rule: an open-ended transaction renders as "ongoing" but is
// never expanded past this date.
func Horizon(t Transaction) time.Time {
	if t.EndDate != nil && !t.EndDate.IsZero() {
		return *t.EndDate
	}
	return addMonthsClamped(t.ScheduledDate, 12)
}

// Occurrences returns the lazy, restartable sequence of dated occurrences for
// a transaction, in ascending date order. A non-recurring transaction (or one
// with an unrecognized frequency, which fails closed to non-recurring) yields
// exactly one occurrence at its scheduled date. A recurring transaction
// yields occurrences from its scheduled date through Horizon, stepping by its
// frequency. Callers that only need a window should break out early or use
// ExpandWithin.
func Occurrences(t Transaction) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		if !t.IsRecurring || !ValidFrequency(t.Frequency) {
			yield(Occurrence{Transaction: t, Date: t.ScheduledDate})
			return
		}

		horizon := Horizon(t)
		for n := 0; ; n++ {
			date := occurrenceDate(t.ScheduledDate, t.Frequency, n)
			if date.After(horizon) {
				return
			}
			if !yield(Occurrence{Transaction: t, Date: date}) {
				return
			}
		}
	}
}

// Expand eagerly materializes Occurrences, truncated at MaxOccurrences.
func Expand(t Transaction) []Occurrence {
	occurrences := make([]Occurrence, 0, 8)
	for occ := range Occurrences(t) {
		occurrences = append(occurrences, occ)
		if len(occurrences) >= MaxOccurrences {
			break
		}
	}
	return occurrences
}

// ExpandWithin returns the occurrences of a transaction whose dates fall in
// [from, to], inclusive. The walk is bounded by the viewport rather than the
// occurrence cap, so a long-running recurrence is never truncated inside the
// requested window.
func ExpandWithin(t Transaction, from, to time.Time) []Occurrence {
	var occurrences []Occurrence
	for occ := range Occurrences(t) {
		if occ.Date.After(to) {
			break
		}
		if occ.Date.Before(from) {
			continue
		}
		occurrences = append(occurrences, occ)
	}
	return occurrences
}

// ExpandAll expands every transaction in the list and returns the combined
// occurrence set. Order within the result follows the input transaction
// order; callers needing date order sort the result themselves.
func ExpandAll(transactions []Transaction) []Occurrence {
	occurrences := make([]Occurrence, 0, len(transactions))
	for _, t := range transactions {
		occurrences = append(occurrences, Expand(t)...)
	}
	return occurrences
}

// ExpandAllWithin expands every transaction, keeping only occurrences in
// [from, to] inclusive.
func ExpandAllWithin(transactions []Transaction, from, to time.Time) []Occurrence {
	var occurrences []Occurrence
	for _, t := range transactions {
		occurrences = append(occurrences, ExpandWithin(t, from, to)...)
	}
	return occurrences
}

// occurrenceDate returns the nth occurrence date (zero-based) for a start
// date and frequency. Month-based frequencies anchor on the start date's
// day-of-month and clamp to the last day of shorter months, so a Jan 31
// monthly transaction lands on Feb 28 and back on Mar 31.
func occurrenceDate(start time.Time, f Frequency, n int) time.Time {
	switch f {
	case FrequencyWeekly:
		return start.AddDate(0, 0, 7*n)
	case FrequencyBiWeekly:
		return start.AddDate(0, 0, 14*n)
	case FrequencyMonthly:
		return addMonthsClamped(start, n)
	case FrequencyQuarterly:
		return addMonthsClamped(start, 3*n)
	case FrequencyYearly:
		return addMonthsClamped(start, 12*n)
	}
	return start
}

// addMonthsClamped adds months to a date keeping the anchor day-of-month,
// clamped to the target month's length. This avoids time.AddDate's rollover
// normalization (Jan 31 + 1 month would otherwise become Mar 3).
func addMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	if last := daysInMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, date.Location())
}

func daysInMonth(date time.Time) int {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
}
