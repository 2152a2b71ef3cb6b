package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/derive"
	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/store"
)

func newPlannerFixture(t *testing.T) (*PlannerService, *repository.TaskRepository, *repository.HabitRepository) {
	t.Helper()
	st := store.NewMemoryStore()
	tasks := repository.NewTaskRepository(st)
	habits := repository.NewHabitRepository(st)
	blocks := repository.NewTimeBlockRepository(st)
	objectives := repository.NewObjectiveRepository(st)
	daylog := repository.NewDayLogRepository(st)
	settings := repository.NewSettingsRepository(st)
	return NewPlannerService(tasks, blocks, habits, objectives, daylog, settings), tasks, habits
}

func TestDaySummaryCapacity(t *testing.T) {
	svc, tasks, _ := newPlannerFixture(t)
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	_, err := tasks.Add(repository.TaskInput{Title: "write report", Duration: 90, Date: "2026-08-25"}, now)
	require.NoError(t, err)
	_, err = tasks.Add(repository.TaskInput{Title: "review", Duration: 60, Date: "2026-08-25"}, now)
	require.NoError(t, err)
	_, err = tasks.Add(repository.TaskInput{Title: "other day", Duration: 600, Date: "2026-08-26"}, now)
	require.NoError(t, err)

	sum, err := svc.DaySummary("2026-08-25")
	require.NoError(t, err)
	assert.Len(t, sum.Tasks, 2)
	assert.Equal(t, 150, sum.PlannedMinutes)
	// Default capacity is 5h, so 150m is 50%.
	assert.Equal(t, 50, sum.CapacityPercent)
	assert.Equal(t, derive.CapacityNone, sum.CapacityStatus)
}

func TestDaySummaryOrdersOpenTasksFirst(t *testing.T) {
	svc, tasks, _ := newPlannerFixture(t)
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	lowOpen, err := tasks.Add(repository.TaskInput{Title: "low open", Priority: model.PriorityLow, Date: "2026-08-25"}, now)
	require.NoError(t, err)
	highDone, err := tasks.Add(repository.TaskInput{Title: "high done", Priority: model.PriorityHigh, Date: "2026-08-25"}, now.Add(time.Minute))
	require.NoError(t, err)
	highOpen, err := tasks.Add(repository.TaskInput{Title: "high open", Priority: model.PriorityHigh, Date: "2026-08-25"}, now.Add(2*time.Minute))
	require.NoError(t, err)
	_, err = tasks.Toggle(highDone.ID, now)
	require.NoError(t, err)

	sum, err := svc.DaySummary("2026-08-25")
	require.NoError(t, err)
	require.Len(t, sum.Tasks, 3)
	assert.Equal(t, highOpen.ID, sum.Tasks[0].ID, "open high-priority first")
	assert.Equal(t, lowOpen.ID, sum.Tasks[1].ID)
	assert.Equal(t, highDone.ID, sum.Tasks[2].ID, "completed tasks sink")
}

func TestRangeReport(t *testing.T) {
	svc, tasks, habits := newPlannerFixture(t)
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	a, err := tasks.Add(repository.TaskInput{Title: "a", Duration: 60, Date: "2026-08-24"}, now)
	require.NoError(t, err)
	_, err = tasks.Add(repository.TaskInput{Title: "b", Duration: 60, Date: "2026-08-25"}, now)
	require.NoError(t, err)
	_, err = tasks.Toggle(a.ID, now)
	require.NoError(t, err)

	habit, err := habits.Add("meditate", model.FrequencyDaily, now)
	require.NoError(t, err)
	_, err = habits.ToggleDate(habit.ID, "2026-08-25", now)
	require.NoError(t, err)

	stats, err := svc.RangeReport("2026-08-24", "2026-08-25")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 50, stats.CompletionRate)
	// 1 completion over 1 habit * 2 days.
	assert.Equal(t, 50, stats.HabitCompletionRate)
	assert.Equal(t, 1.0, stats.FocusHours)
	assert.Nil(t, stats.AverageMood)
}

func TestWeekView(t *testing.T) {
	svc, tasks, _ := newPlannerFixture(t)
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	_, err := tasks.Add(repository.TaskInput{Title: "monday task", Duration: 60, Date: "2026-08-24"}, now)
	require.NoError(t, err)
	_, err = tasks.Add(repository.TaskInput{Title: "next week", Duration: 60, Date: "2026-08-31"}, now)
	require.NoError(t, err)

	// Any day of the week resolves to the same Monday.
	view, err := svc.WeekView("2026-08-27")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", view.WeekStart)
	require.Len(t, view.Days, 7)
	assert.Equal(t, 1, view.Days[0].TotalTasks)
	assert.Equal(t, 60, view.Days[0].PlannedMinutes)
	for _, d := range view.Days[1:] {
		assert.Zero(t, d.TotalTasks, d.Day)
	}
}

func TestFormatDaySummary(t *testing.T) {
	svc, tasks, _ := newPlannerFixture(t)
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	_, err := tasks.Add(repository.TaskInput{Title: "write report", Duration: 90, Date: "2026-08-25"}, now)
	require.NoError(t, err)

	sum, err := svc.DaySummary("2026-08-25")
	require.NoError(t, err)
	text := FormatDaySummary(sum)
	assert.Contains(t, text, "Plan for 2026-08-25")
	assert.Contains(t, text, "write report")
	assert.Contains(t, text, "90m")
}
