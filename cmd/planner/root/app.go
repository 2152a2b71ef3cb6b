package root

import (
	"planner/internal/config"
	"planner/internal/repository"
	"planner/internal/service"
	"planner/internal/store"
)

// App wires the store, repositories and services for one command run.
type App struct {
	Config     config.Config
	Store      store.Store
	Tasks      *repository.TaskRepository
	Habits     *repository.HabitRepository
	Blocks     *repository.TimeBlockRepository
	Goals      *repository.GoalRepository
	Objectives *repository.ObjectiveRepository
	DayLog     *repository.DayLogRepository
	Settings   *repository.SettingsRepository
	Planner    *service.PlannerService
	Focus      *service.FocusService
}

func openApp() (*App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	st, err := store.OpenSQLite(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = st.Close()
	}

	app := newApp(cfg, st)
	return app, cleanup, nil
}

func newApp(cfg config.Config, st store.Store) *App {
	tasks := repository.NewTaskRepository(st)
	habits := repository.NewHabitRepository(st)
	blocks := repository.NewTimeBlockRepository(st)
	objectives := repository.NewObjectiveRepository(st)
	daylog := repository.NewDayLogRepository(st)
	settings := repository.NewSettingsRepository(st)

	return &App{
		Config:     cfg,
		Store:      st,
		Tasks:      tasks,
		Habits:     habits,
		Blocks:     blocks,
		Goals:      repository.NewGoalRepository(st),
		Objectives: objectives,
		DayLog:     daylog,
		Settings:   settings,
		Planner:    service.NewPlannerService(tasks, blocks, habits, objectives, daylog, settings),
		Focus:      service.NewFocusService(tasks),
	}
}
