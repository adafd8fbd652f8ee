package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBounds(t *testing.T) {
	// 2025-09-10 is a Wednesday.
	wednesday := date(2025, time.September, 10)

	assert.True(t, WeekStart(wednesday).Equal(date(2025, time.September, 7)))
	assert.True(t, WeekEnd(wednesday).Equal(date(2025, time.September, 13)))

	// A Sunday starts its own week.
	sunday := date(2025, time.September, 7)
	assert.True(t, WeekStart(sunday).Equal(sunday))
}

func TestMonthBounds(t *testing.T) {
	assert.True(t, MonthStart(date(2025, time.February, 14)).Equal(date(2025, time.February, 1)))
	assert.True(t, MonthEnd(date(2025, time.February, 14)).Equal(date(2025, time.February, 28)))
	assert.True(t, MonthEnd(date(2024, time.February, 14)).Equal(date(2024, time.February, 29)))
	assert.True(t, MonthEnd(date(2025, time.December, 1)).Equal(date(2025, time.December, 31)))
}

func TestQuarterBounds(t *testing.T) {
	assert.True(t, QuarterStart(date(2025, time.August, 20)).Equal(date(2025, time.July, 1)))
	assert.True(t, QuarterEnd(date(2025, time.August, 20)).Equal(date(2025, time.September, 30)))
	assert.True(t, QuarterStart(date(2025, time.December, 31)).Equal(date(2025, time.October, 1)))
	assert.True(t, QuarterEnd(date(2025, time.December, 31)).Equal(date(2025, time.December, 31)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(date(2025, time.February, 1)))
	assert.Equal(t, 29, DaysInMonth(date(2024, time.February, 1)))
	assert.Equal(t, 31, DaysInMonth(date(2025, time.January, 15)))
}

func TestSameDayAndMonth(t *testing.T) {
	assert.True(t, SameDay(date(2025, time.March, 3), time.Date(2025, time.March, 3, 23, 59, 0, 0, time.UTC)))
	assert.False(t, SameDay(date(2025, time.March, 3), date(2025, time.March, 4)))
	assert.True(t, SameMonth(date(2025, time.March, 3), date(2025, time.March, 30)))
	assert.False(t, SameMonth(date(2025, time.March, 3), date(2024, time.March, 3)))
}
