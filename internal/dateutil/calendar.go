package dateutil

import "time"

// GridCells is the fixed size of a month view: 6 rows of 7 days. Months that
// fit in fewer rows still render the full grid so the view keeps a constant
// height.
const GridCells = 42

// DayCell is one cell of a month grid.
type DayCell struct {
	Date       time.Time
	Day        string // YYYY-MM-DD
	DayOfMonth int
	OtherMonth bool
	Today      bool
}

// CalendarGrid builds the Monday-first month grid for the given month.
// Leading cells come from the tail of the previous month and trailing cells
// from the head of the next month, flagged OtherMonth. Today is set only on
// the current-month cell matching today's date.
func CalendarGrid(year int, month time.Month, today time.Time) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	lead := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -lead)

	cells := make([]DayCell, GridCells)
	for i := range cells {
		d := start.AddDate(0, 0, i)
		other := d.Month() != month || d.Year() != year
		cells[i] = DayCell{
			Date:       d,
			Day:        FormatDay(d),
			DayOfMonth: d.Day(),
			OtherMonth: other,
			Today:      !other && SameDay(d, today),
		}
	}
	return cells
}

// YearDay is one day of a full-year listing.
type YearDay struct {
	Date    time.Time
	Day     string // YYYY-MM-DD
	ISOWeek int    // ISO-8601 week number
	Weekday time.Weekday
}

// YearDays lists every day of the year in order, 365 or 366 entries, each
// carrying its ISO-8601 week number (the week containing the year's first
// Thursday is week 1).
func YearDays(year int) []YearDay {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	n := 365
	if DaysInMonth(time.February, year) == 29 {
		n = 366
	}
	days := make([]YearDay, n)
	for i := range days {
		d := first.AddDate(0, 0, i)
		_, week := d.ISOWeek()
		days[i] = YearDay{
			Date:    d,
			Day:     FormatDay(d),
			ISOWeek: week,
			Weekday: d.Weekday(),
		}
	}
	return days
}
