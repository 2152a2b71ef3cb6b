package derive

import (
	"math"

	"planner/internal/dateutil"
	"planner/internal/model"
)

// Stats aggregates tasks, habits and check-ins over an inclusive day range.
type Stats struct {
	TotalTasks          int
	CompletedTasks      int
	CompletionRate      int      // percent, 0 when no tasks in range
	HabitCompletionRate int      // percent, see RangeStats for the scoring rule
	AverageMood         *float64 // 1 decimal, nil when no mood was recorded
	FocusHours          float64  // 1 decimal, from completed task durations
}

// RangeStats computes statistics over [start, end], both YYYY-MM-DD day
// strings compared lexicographically.
//
// Habit completion is scored against habits × daysInRange possible days
// regardless of each habit's declared frequency. This is a known limitation
// kept for compatibility: a weekly habit can never reach 100%.
func RangeStats(tasks []model.Task, habits []model.Habit, log model.DayLog, start, end string) Stats {
	var s Stats

	for _, t := range tasks {
		if t.Date < start || t.Date > end {
			continue
		}
		s.TotalTasks++
		if t.Completed {
			s.CompletedTasks++
			s.FocusHours += float64(taskDuration(t))
		}
	}
	if s.TotalTasks > 0 {
		s.CompletionRate = roundPercent(s.CompletedTasks, s.TotalTasks)
	}
	s.FocusHours = round1(s.FocusHours / 60)

	s.HabitCompletionRate = habitCompletionRate(habits, start, end)

	var moodSum, moodDays int
	for day, entry := range log {
		if day < start || day > end || entry.Mood == nil {
			continue
		}
		moodSum += *entry.Mood
		moodDays++
	}
	if moodDays > 0 {
		avg := round1(float64(moodSum) / float64(moodDays))
		s.AverageMood = &avg
	}

	return s
}

// ProductivityScore blends task and habit completion into one 0-100 score.
func ProductivityScore(s Stats) int {
	return int(math.Round(float64(s.CompletionRate)*0.6 + float64(s.HabitCompletionRate)*0.4))
}

func habitCompletionRate(habits []model.Habit, start, end string) int {
	startDay, err := dateutil.ParseDay(start)
	if err != nil {
		return 0
	}
	endDay, err := dateutil.ParseDay(end)
	if err != nil {
		return 0
	}
	possible := len(habits) * dateutil.DaysBetween(startDay, endDay)
	if possible == 0 {
		return 0
	}

	var completions int
	for _, h := range habits {
		for _, d := range h.CompletedDates {
			if d >= start && d <= end {
				completions++
			}
		}
	}
	return roundPercent(completions, possible)
}

func taskDuration(t model.Task) int {
	if t.Duration <= 0 {
		return model.DefaultDuration
	}
	return t.Duration
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
