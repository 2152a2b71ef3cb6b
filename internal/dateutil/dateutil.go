// Package dateutil holds the pure calendar helpers the planner derives its
// views from. Everything that depends on "today" takes it as a parameter so
// callers (and tests) control the clock.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the fixed-width day format used everywhere a date is stored.
// Lexicographic order of these strings equals chronological order.
const DayLayout = "2006-01-02"

// FormatDay renders t as a YYYY-MM-DD day string.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD day string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}

// Midnight returns t with the time of day zeroed, keeping its location.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether d falls on the same calendar date as now,
// ignoring the time of day.
func IsToday(d, now time.Time) bool {
	return SameDay(d, now)
}

// WeekStart returns the Monday on or before d with the time zeroed.
// Sunday maps to the Monday six days earlier (ISO weeks, not US weeks).
func WeekStart(d time.Time) time.Time {
	d = Midnight(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekDates returns the seven dates of the week starting at monday,
// Monday through Sunday.
func WeekDates(monday time.Time) []time.Time {
	monday = Midnight(monday)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(month time.Month, year int) int {
	// Move to next month, roll back a day.
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

// DaysBetween counts the calendar days from start to end, inclusive.
// It returns 0 when end is before start. The dates are compared as
// calendar days, so DST transitions inside the range don't skew the count.
func DaysBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// ParseClock parses an HH:MM clock string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}
