package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"planner/internal/dateutil"
	"planner/internal/derive"
	"planner/internal/model"
	"planner/internal/repository"
)

// PlannerService assembles the derived day, week and range views the CLI
// renders.
type PlannerService struct {
	tasks      *repository.TaskRepository
	blocks     *repository.TimeBlockRepository
	habits     *repository.HabitRepository
	objectives *repository.ObjectiveRepository
	daylog     *repository.DayLogRepository
	settings   *repository.SettingsRepository
}

func NewPlannerService(
	tasks *repository.TaskRepository,
	blocks *repository.TimeBlockRepository,
	habits *repository.HabitRepository,
	objectives *repository.ObjectiveRepository,
	daylog *repository.DayLogRepository,
	settings *repository.SettingsRepository,
) *PlannerService {
	return &PlannerService{
		tasks:      tasks,
		blocks:     blocks,
		habits:     habits,
		objectives: objectives,
		daylog:     daylog,
		settings:   settings,
	}
}

// DaySummary is the derived view of one day: its tasks and blocks, habit
// state, and how much of the daily capacity the plan consumes.
type DaySummary struct {
	Day             string
	Tasks           []model.Task
	Blocks          []model.TimeBlock
	Habits          []model.Habit
	PlannedMinutes  int
	CapacityPercent int
	CapacityStatus  derive.CapacityStatus
}

// DaySummary builds the summary for one YYYY-MM-DD day. Tasks are ordered
// open-first, then by priority, then oldest-first.
func (s *PlannerService) DaySummary(day string) (*DaySummary, error) {
	tasks, err := s.tasks.ListForDate(day)
	if err != nil {
		return nil, err
	}
	blocks, err := s.blocks.ListForDate(day)
	if err != nil {
		return nil, err
	}
	habits, err := s.habits.List()
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Completed != tasks[j].Completed {
			return !tasks[i].Completed
		}
		if tasks[i].Priority.Rank() != tasks[j].Priority.Rank() {
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	planned := 0
	for _, t := range tasks {
		if t.Duration > 0 {
			planned += t.Duration
		} else {
			planned += model.DefaultDuration
		}
	}
	percent := derive.CapacityPercent(planned, settings.DailyCapacity)

	return &DaySummary{
		Day:             day,
		Tasks:           tasks,
		Blocks:          blocks,
		Habits:          habits,
		PlannedMinutes:  planned,
		CapacityPercent: percent,
		CapacityStatus:  derive.StatusForPercent(percent),
	}, nil
}

// WeekDay is one day of the week view: the day's task counts and how much
// of the daily capacity its plan consumes.
type WeekDay struct {
	Day             string
	TotalTasks      int
	CompletedTasks  int
	PlannedMinutes  int
	CapacityPercent int
}

// WeekView is the derived view of one Monday-started week.
type WeekView struct {
	WeekStart  string
	Days       []WeekDay
	Objectives []model.WeeklyObjective
}

// WeekView builds the view for the week containing the given day. Any day of
// the week maps to the same view.
func (s *PlannerService) WeekView(day string) (*WeekView, error) {
	parsed, err := dateutil.ParseDay(day)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}

	monday := dateutil.WeekStart(parsed)
	view := &WeekView{WeekStart: dateutil.FormatDay(monday)}
	for _, date := range dateutil.WeekDates(monday) {
		d := dateutil.FormatDay(date)
		tasks, err := s.tasks.ListForDate(d)
		if err != nil {
			return nil, err
		}
		wd := WeekDay{Day: d, TotalTasks: len(tasks)}
		for _, t := range tasks {
			if t.Completed {
				wd.CompletedTasks++
			}
			if t.Duration > 0 {
				wd.PlannedMinutes += t.Duration
			} else {
				wd.PlannedMinutes += model.DefaultDuration
			}
		}
		wd.CapacityPercent = derive.CapacityPercent(wd.PlannedMinutes, settings.DailyCapacity)
		view.Days = append(view.Days, wd)
	}

	objectives, err := s.objectives.ListForWeek(view.WeekStart)
	if err != nil {
		return nil, err
	}
	view.Objectives = objectives
	return view, nil
}

// RangeReport computes the statistics for [start, end] day strings.
func (s *PlannerService) RangeReport(start, end string) (derive.Stats, error) {
	tasks, err := s.tasks.ListRange(start, end)
	if err != nil {
		return derive.Stats{}, err
	}
	habits, err := s.habits.List()
	if err != nil {
		return derive.Stats{}, err
	}
	log, err := s.daylog.Range(start, end)
	if err != nil {
		return derive.Stats{}, err
	}
	return derive.RangeStats(tasks, habits, log, start, end), nil
}

// FormatDaySummary renders the summary as plain text for the reminder job
// and the CLI.
func FormatDaySummary(sum *DaySummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Plan for %s\n\n", sum.Day))

	b.WriteString("Tasks\n")
	if len(sum.Tasks) == 0 {
		b.WriteString("  no tasks planned\n")
	}
	for _, t := range sum.Tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (%s, %dm)\n", mark, t.Title, t.Priority, t.Duration))
	}

	if len(sum.Blocks) > 0 {
		b.WriteString("\nSchedule\n")
		for _, blk := range sum.Blocks {
			b.WriteString(fmt.Sprintf("  %s-%s %s\n", blk.StartTime, blk.EndTime, blk.Title))
		}
	}

	if len(sum.Habits) > 0 {
		b.WriteString("\nHabits\n")
		for _, h := range sum.Habits {
			mark := "[ ]"
			if h.CompletedOn(sum.Day) {
				mark = "[x]"
			}
			b.WriteString(fmt.Sprintf("  %s %s (streak %d)\n", mark, h.Name, h.CurrentStreak))
		}
	}

	b.WriteString(fmt.Sprintf("\nCapacity: %dm planned, %d%% of daily budget", sum.PlannedMinutes, sum.CapacityPercent))
	if sum.CapacityStatus == derive.CapacityDanger {
		b.WriteString(" (over capacity)")
	}
	return b.String()
}

// Today returns now's day string; kept here so callers share one notion of
// the current day.
func Today(now time.Time) string {
	return dateutil.FormatDay(now)
}
