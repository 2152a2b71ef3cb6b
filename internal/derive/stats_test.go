package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/model"
)

func task(date string, completed bool, duration int) model.Task {
	return model.Task{Date: date, Completed: completed, Duration: duration}
}

func TestRangeStatsEmptyRange(t *testing.T) {
	s := RangeStats(nil, nil, nil, "2026-08-01", "2026-08-07")
	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0, s.CompletionRate)
	assert.Equal(t, 0, s.HabitCompletionRate)
	assert.Nil(t, s.AverageMood)
	assert.Equal(t, 0.0, s.FocusHours)
	assert.Equal(t, 0, ProductivityScore(s))
}

func TestRangeStatsCompletionRate(t *testing.T) {
	tasks := []model.Task{
		task("2026-08-01", true, 60),
		task("2026-08-02", true, 90),
		task("2026-08-03", false, 30),
		// Outside the range, must not count.
		task("2026-07-31", true, 60),
		task("2026-08-08", false, 60),
	}
	s := RangeStats(tasks, nil, nil, "2026-08-01", "2026-08-07")
	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 2, s.CompletedTasks)
	assert.Equal(t, 67, s.CompletionRate)
	assert.Equal(t, 2.5, s.FocusHours)
}

func TestRangeStatsDefaultsMissingDuration(t *testing.T) {
	tasks := []model.Task{task("2026-08-01", true, 0)}
	s := RangeStats(tasks, nil, nil, "2026-08-01", "2026-08-01")
	assert.Equal(t, 0.5, s.FocusHours)
}

func TestRangeStatsHabitRateIgnoresFrequency(t *testing.T) {
	habits := []model.Habit{
		{
			Name:           "stretch",
			Frequency:      model.FrequencyDaily,
			CompletedDates: []string{"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05", "2026-08-06", "2026-08-07"},
		},
		{
			// A weekly habit is still scored against every day in range, so
			// one completion in a week caps out at 1/7.
			Name:           "review",
			Frequency:      model.FrequencyWeekly,
			CompletedDates: []string{"2026-08-03"},
		},
	}
	s := RangeStats(nil, habits, nil, "2026-08-01", "2026-08-07")
	// 8 completions over 2 habits * 7 days.
	assert.Equal(t, 57, s.HabitCompletionRate)
}

func TestRangeStatsAverageMood(t *testing.T) {
	three, four, five := 3, 4, 5
	log := model.DayLog{
		"2026-08-01": {Mood: &four},
		"2026-08-02": {Mood: &five},
		"2026-08-03": {Mood: nil}, // recorded day without mood
		"2026-07-01": {Mood: &three},
	}
	s := RangeStats(nil, nil, log, "2026-08-01", "2026-08-07")
	require.NotNil(t, s.AverageMood)
	assert.Equal(t, 4.5, *s.AverageMood)
}

func TestProductivityScore(t *testing.T) {
	s := Stats{CompletionRate: 80, HabitCompletionRate: 50}
	assert.Equal(t, 68, ProductivityScore(s))
}
