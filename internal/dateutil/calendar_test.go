package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarGridShape(t *testing.T) {
	today := day("2026-08-25")
	// Every month of several years: always 42 cells, every 7th a Sunday.
	for _, year := range []int{2024, 2025, 2026} {
		for month := time.January; month <= time.December; month++ {
			cells := CalendarGrid(year, month, today)
			require.Len(t, cells, GridCells, "%s %d", month, year)
			for i := 6; i < GridCells; i += 7 {
				assert.Equal(t, time.Sunday, cells[i].Date.Weekday(), "%s %d cell %d", month, year, i)
			}
			assert.Equal(t, time.Monday, cells[0].Date.Weekday())
		}
	}
}

func TestCalendarGridOtherMonthFlags(t *testing.T) {
	// June 2026 starts on a Monday and has 30 days: no leading cells,
	// twelve trailing cells from July.
	cells := CalendarGrid(2026, time.June, day("2026-08-25"))
	assert.False(t, cells[0].OtherMonth)
	assert.Equal(t, 1, cells[0].DayOfMonth)
	assert.False(t, cells[29].OtherMonth)
	assert.Equal(t, 30, cells[29].DayOfMonth)
	for i := 30; i < GridCells; i++ {
		assert.True(t, cells[i].OtherMonth, "cell %d", i)
	}
	assert.Equal(t, 1, cells[30].DayOfMonth)
}

func TestCalendarGridTodayFlag(t *testing.T) {
	today := day("2026-08-25")

	cells := CalendarGrid(2026, time.August, today)
	var marked []string
	for _, c := range cells {
		if c.Today {
			marked = append(marked, c.Day)
		}
	}
	require.Equal(t, []string{"2026-08-25"}, marked)

	// A different month never marks today.
	for _, c := range CalendarGrid(2026, time.September, today) {
		assert.False(t, c.Today, "cell %s", c.Day)
	}
}

func TestYearDays(t *testing.T) {
	days := YearDays(2026)
	require.Len(t, days, 365)
	assert.Equal(t, "2026-01-01", days[0].Day)
	assert.Equal(t, "2026-12-31", days[364].Day)

	leap := YearDays(2024)
	require.Len(t, leap, 366)
}

func TestYearDaysISOWeeks(t *testing.T) {
	days := YearDays(2021)
	// 2021-01-01 is a Friday and belongs to ISO week 53 of 2020.
	assert.Equal(t, 53, days[0].ISOWeek)
	// 2021-01-04 is the first Monday, ISO week 1.
	assert.Equal(t, 1, days[3].ISOWeek)

	days2026 := YearDays(2026)
	// 2026-01-01 is a Thursday, so it is already week 1.
	assert.Equal(t, 1, days2026[0].ISOWeek)
	assert.Equal(t, time.Thursday, days2026[0].Weekday)
}
