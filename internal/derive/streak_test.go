package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"planner/internal/dateutil"
	"planner/internal/model"
)

var streakToday = time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return dateutil.FormatDay(streakToday.AddDate(0, 0, -n))
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"today only", []string{daysAgo(0)}, 1},
		{"three days ending today", []string{daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
		{"ongoing, today unchecked", []string{daysAgo(1), daysAgo(2), daysAgo(3)}, 3},
		{"broken two days ago", []string{daysAgo(3), daysAgo(4)}, 0},
		{"gap stops the walk", []string{daysAgo(0), daysAgo(1), daysAgo(3), daysAgo(4)}, 2},
		{"unsorted input", []string{daysAgo(2), daysAgo(0), daysAgo(1)}, 3},
		{"duplicates ignored", []string{daysAgo(0), daysAgo(0), daysAgo(1)}, 2},
		{"malformed entries ignored", []string{daysAgo(0), "not-a-date", daysAgo(1)}, 2},
		{"future-free month boundary", []string{"2026-08-01", "2026-07-31", "2026-07-30"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.dates, streakToday))
		})
	}
}

func TestCurrentStreakAcrossMonthBoundary(t *testing.T) {
	today := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	dates := []string{"2026-08-02", "2026-08-01", "2026-07-31", "2026-07-30"}
	assert.Equal(t, 4, CurrentStreak(dates, today))
}

func TestCurrentStreakIsPure(t *testing.T) {
	dates := []string{daysAgo(0), daysAgo(1)}
	first := CurrentStreak(dates, streakToday)
	second := CurrentStreak(dates, streakToday)
	assert.Equal(t, first, second)
	// Input order is untouched.
	assert.Equal(t, []string{daysAgo(0), daysAgo(1)}, dates)
}

func TestRecalculateWatermark(t *testing.T) {
	h := &model.Habit{
		CompletedDates: []string{daysAgo(0), daysAgo(1), daysAgo(2)},
	}
	Recalculate(h, streakToday)
	assert.Equal(t, 3, h.CurrentStreak)
	assert.Equal(t, 3, h.LongestStreak)

	// Losing the streak never lowers the watermark.
	h.CompletedDates = []string{daysAgo(5)}
	Recalculate(h, streakToday)
	assert.Equal(t, 0, h.CurrentStreak)
	assert.Equal(t, 3, h.LongestStreak)

	// A new shorter streak still keeps the old high-water mark.
	h.CompletedDates = []string{daysAgo(0)}
	Recalculate(h, streakToday)
	assert.Equal(t, 1, h.CurrentStreak)
	assert.Equal(t, 3, h.LongestStreak)
}
