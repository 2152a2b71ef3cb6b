package derive

import (
	"sort"
	"time"

	"planner/internal/dateutil"
	"planner/internal/model"
)

// CurrentStreak counts the consecutive run of completed days ending at today
// or yesterday. A gap before yesterday resets the streak to zero; today not
// being checked yet does not. The function is pure: the caller supplies
// "today", and duplicate or malformed entries in completedDates are ignored.
func CurrentStreak(completedDates []string, today time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(completedDates))
	days := make([]string, 0, len(completedDates))
	for _, d := range completedDates {
		if _, dup := seen[d]; dup {
			continue
		}
		if _, err := dateutil.ParseDay(d); err != nil {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0
	}

	// Most recent first. Day strings sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	todayStr := dateutil.FormatDay(today)
	yesterdayStr := dateutil.FormatDay(today.AddDate(0, 0, -1))
	if days[0] != todayStr && days[0] != yesterdayStr {
		return 0
	}

	streak := 1
	prev, _ := dateutil.ParseDay(days[0])
	for _, s := range days[1:] {
		d, _ := dateutil.ParseDay(s)
		if !dateutil.SameDay(d, prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = d
	}
	return streak
}

// Recalculate refreshes the habit's cached streak fields from its completed
// dates. LongestStreak is a watermark: it only ever grows.
func Recalculate(h *model.Habit, today time.Time) {
	h.CurrentStreak = CurrentStreak(h.CompletedDates, today)
	if h.CurrentStreak > h.LongestStreak {
		h.LongestStreak = h.CurrentStreak
	}
}
