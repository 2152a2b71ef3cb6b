package repository

import (
	"fmt"
	"time"

	"planner/internal/model"
	"planner/internal/store"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	store store.Store
}

func NewTaskRepository(s store.Store) *TaskRepository {
	return &TaskRepository{store: s}
}

// TaskInput is the caller-supplied part of a new task; the repository fills
// in ID, creation time and defaults.
type TaskInput struct {
	Title    string
	Priority model.Priority
	Category model.Category
	Duration int
	Date     string
}

func (r *TaskRepository) List() ([]model.Task, error) {
	return loadSlice[model.Task](r.store, store.KeyTasks)
}

// ListForDate returns the tasks planned for one day.
func (r *TaskRepository) ListForDate(day string) ([]model.Task, error) {
	tasks, err := r.List()
	if err != nil {
		return nil, err
	}
	var out []model.Task
	for _, t := range tasks {
		if t.Date == day {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListRange returns tasks whose date falls in [start, end] inclusive.
func (r *TaskRepository) ListRange(start, end string) ([]model.Task, error) {
	tasks, err := r.List()
	if err != nil {
		return nil, err
	}
	var out []model.Task
	for _, t := range tasks {
		if t.Date >= start && t.Date <= end {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TaskRepository) Add(in TaskInput, now time.Time) (*model.Task, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !in.Priority.IsValid() {
		in.Priority = model.PriorityMedium
	}
	if !in.Category.IsValid() {
		in.Category = model.CategoryPersonal
	}
	if in.Duration <= 0 {
		in.Duration = model.DefaultDuration
	}

	task := model.Task{
		ID:        newID(),
		Title:     in.Title,
		Priority:  in.Priority,
		Category:  in.Category,
		Duration:  in.Duration,
		Date:      in.Date,
		CreatedAt: now,
	}

	tasks, err := r.List()
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, task)
	if err := save(r.store, store.KeyTasks, tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskPatch is a shallow patch: nil fields keep their current value.
type TaskPatch struct {
	Title     *string
	Priority  *model.Priority
	Category  *model.Category
	Duration  *int
	Date      *string
	Completed *bool
}

// Update applies the patch over the stored task. Completing a task stamps
// CompletedAt only the first time; toggling back to open never clears it.
func (r *TaskRepository) Update(id string, patch TaskPatch, now time.Time) (*model.Task, error) {
	tasks, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		t := &tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Duration != nil {
			t.Duration = *patch.Duration
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
			if t.Completed && t.CompletedAt == nil {
				stamp := now
				t.CompletedAt = &stamp
			}
		}
		if err := save(r.store, store.KeyTasks, tasks); err != nil {
			return nil, err
		}
		updated := *t
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Toggle flips the task's completed flag.
func (r *TaskRepository) Toggle(id string, now time.Time) (*model.Task, error) {
	tasks, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		next := !tasks[i].Completed
		return r.Update(id, TaskPatch{Completed: &next}, now)
	}
	return nil, ErrNotFound
}

func (r *TaskRepository) Delete(id string) error {
	tasks, err := r.List()
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return save(r.store, store.KeyTasks, tasks)
		}
	}
	return ErrNotFound
}
