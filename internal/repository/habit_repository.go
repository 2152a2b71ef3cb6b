package repository

import (
	"fmt"
	"sort"
	"time"

	"planner/internal/derive"
	"planner/internal/model"
	"planner/internal/store"
)

// HabitRepository handles CRUD for habits. Every mutation of a habit's
// completed days recomputes the cached streak fields; the longest streak is
// a watermark and never decreases.
type HabitRepository struct {
	store store.Store
}

func NewHabitRepository(s store.Store) *HabitRepository {
	return &HabitRepository{store: s}
}

func (r *HabitRepository) List() ([]model.Habit, error) {
	return loadSlice[model.Habit](r.store, store.KeyHabits)
}

func (r *HabitRepository) Add(name string, frequency model.Frequency, now time.Time) (*model.Habit, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !frequency.IsValid() {
		frequency = model.FrequencyDaily
	}

	habit := model.Habit{
		ID:        newID(),
		Name:      name,
		Frequency: frequency,
		CreatedAt: now,
	}

	habits, err := r.List()
	if err != nil {
		return nil, err
	}
	habits = append(habits, habit)
	if err := save(r.store, store.KeyHabits, habits); err != nil {
		return nil, err
	}
	return &habit, nil
}

// HabitPatch is a shallow patch: nil fields keep their current value.
type HabitPatch struct {
	Name      *string
	Frequency *model.Frequency
}

func (r *HabitRepository) Update(id string, patch HabitPatch) (*model.Habit, error) {
	habits, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		h := &habits[i]
		if patch.Name != nil {
			h.Name = *patch.Name
		}
		if patch.Frequency != nil && patch.Frequency.IsValid() {
			h.Frequency = *patch.Frequency
		}
		if err := save(r.store, store.KeyHabits, habits); err != nil {
			return nil, err
		}
		updated := *h
		return &updated, nil
	}
	return nil, ErrNotFound
}

// ToggleDate checks or unchecks the habit for one day. CompletedDates keeps
// set semantics: toggling an already-checked day removes it, and a day is
// never stored twice. Streaks are recomputed against the supplied today.
func (r *HabitRepository) ToggleDate(id, day string, today time.Time) (*model.Habit, error) {
	habits, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		h := &habits[i]
		if h.CompletedOn(day) {
			kept := h.CompletedDates[:0]
			for _, d := range h.CompletedDates {
				if d != day {
					kept = append(kept, d)
				}
			}
			h.CompletedDates = kept
		} else {
			h.CompletedDates = append(h.CompletedDates, day)
			sort.Strings(h.CompletedDates)
		}
		derive.Recalculate(h, today)
		if err := save(r.store, store.KeyHabits, habits); err != nil {
			return nil, err
		}
		updated := *h
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (r *HabitRepository) Delete(id string) error {
	habits, err := r.List()
	if err != nil {
		return err
	}
	for i := range habits {
		if habits[i].ID == id {
			habits = append(habits[:i], habits[i+1:]...)
			return save(r.store, store.KeyHabits, habits)
		}
	}
	return ErrNotFound
}
