package finance

import "time"

// WeekStart returns the Sunday beginning the week containing date, at
// midnight. The dashboard's week view runs Sunday through Saturday.
func WeekStart(date time.Time) time.Time {
	d := date.AddDate(0, 0, -int(date.Weekday()))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, date.Location())
}

// WeekEnd returns the Saturday ending the week containing date, at midnight.
func WeekEnd(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, 6)
}

// MonthStart returns the first day of the month containing date.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthEnd returns the last day of the month containing date.
func MonthEnd(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location())
}

// QuarterStart returns the first day of the calendar quarter containing date.
func QuarterStart(date time.Time) time.Time {
	quarterMonth := time.Month((int(date.Month())-1)/3*3 + 1)
	return time.Date(date.Year(), quarterMonth, 1, 0, 0, 0, 0, date.Location())
}

// QuarterEnd returns the last day of the calendar quarter containing date.
func QuarterEnd(date time.Time) time.Time {
	quarterMonth := time.Month((int(date.Month())-1)/3*3 + 1)
	return time.Date(date.Year(), quarterMonth+3, 0, 0, 0, 0, 0, date.Location())
}

// DaysInMonth returns the number of days in the month containing date.
func DaysInMonth(date time.Time) int {
	return daysInMonth(date)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether two times fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
