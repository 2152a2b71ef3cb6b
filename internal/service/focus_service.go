package service

import (
	"fmt"
	"sync"
	"time"

	"planner/internal/repository"
)

// FocusService runs a focus-session countdown against one task: a repeating
// one-second tick decrements the remaining time, and reaching zero marks the
// task complete. The session can be paused, resumed or stopped at any tick
// boundary; a stopped session leaves the task untouched.
type FocusService struct {
	tasks *repository.TaskRepository

	// Interval is the tick length, one second by default. Tests shorten it.
	Interval time.Duration
	// Clock supplies the completion timestamp, time.Now by default.
	Clock func() time.Time

	mu     sync.Mutex
	paused bool
	stopCh chan struct{}
}

func NewFocusService(tasks *repository.TaskRepository) *FocusService {
	return &FocusService{
		tasks:    tasks,
		Interval: time.Second,
		Clock:    time.Now,
	}
}

// Run counts down minutes for the given task, invoking onTick with the
// seconds remaining after every elapsed tick. It blocks until the countdown
// reaches zero (completing the task and returning true) or Stop is called
// (returning false). Paused ticks pass without decrementing.
func (f *FocusService) Run(taskID string, minutes int, onTick func(remaining int)) (bool, error) {
	if minutes <= 0 {
		return false, fmt.Errorf("minutes must be positive")
	}
	tasks, err := f.tasks.List()
	if err != nil {
		return false, err
	}
	found := false
	for _, t := range tasks {
		if t.ID == taskID {
			found = true
			break
		}
	}
	if !found {
		return false, repository.ErrNotFound
	}

	f.mu.Lock()
	f.paused = false
	f.stopCh = make(chan struct{})
	stopCh := f.stopCh
	f.mu.Unlock()

	remaining := minutes * 60
	ticker := time.NewTicker(f.Interval)
	defer ticker.Stop()

	for remaining > 0 {
		select {
		case <-stopCh:
			return false, nil
		case <-ticker.C:
			f.mu.Lock()
			paused := f.paused
			f.mu.Unlock()
			if paused {
				continue
			}
			remaining--
			if onTick != nil {
				onTick(remaining)
			}
		}
	}

	completed := true
	if _, err := f.tasks.Update(taskID, repository.TaskPatch{Completed: &completed}, f.Clock()); err != nil {
		return true, fmt.Errorf("complete focused task: %w", err)
	}
	return true, nil
}

// Pause suspends the countdown without losing the remaining time.
func (f *FocusService) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = true
}

// Resume continues a paused countdown.
func (f *FocusService) Resume() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = false
}

// Stop cancels the running session. Safe to call more than once.
func (f *FocusService) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopCh == nil {
		return
	}
	select {
	case <-f.stopCh:
	default:
		close(f.stopCh)
	}
}
