package repository

import (
	"fmt"
	"time"

	"planner/internal/model"
	"planner/internal/store"
)

// GoalRepository manages the three goal partitions (yearly, monthly, life
// areas) persisted together under one key.
type GoalRepository struct {
	store store.Store
}

func NewGoalRepository(s store.Store) *GoalRepository {
	return &GoalRepository{store: s}
}

// Get returns the full goal set, empty partitions included.
func (r *GoalRepository) Get() (model.GoalSet, error) {
	set, err := loadObject[model.GoalSet](r.store, store.KeyGoals)
	if err != nil {
		return model.GoalSet{}, err
	}
	if set == nil {
		set = &model.GoalSet{}
	}
	if set.LifeAreas == nil {
		set.LifeAreas = make(map[model.LifeArea][]model.Goal)
	}
	return *set, nil
}

// GoalInput is the caller-supplied part of a new goal.
type GoalInput struct {
	Title       string
	Description string
}

func (r *GoalRepository) AddYearly(in GoalInput, now time.Time) (*model.Goal, error) {
	return r.add(in, now, func(set *model.GoalSet, g model.Goal) {
		set.Yearly = append(set.Yearly, g)
	})
}

func (r *GoalRepository) AddMonthly(in GoalInput, now time.Time) (*model.Goal, error) {
	return r.add(in, now, func(set *model.GoalSet, g model.Goal) {
		set.Monthly = append(set.Monthly, g)
	})
}

func (r *GoalRepository) AddLifeArea(area model.LifeArea, in GoalInput, now time.Time) (*model.Goal, error) {
	if !area.IsValid() {
		return nil, fmt.Errorf("invalid life area: %q", area)
	}
	return r.add(in, now, func(set *model.GoalSet, g model.Goal) {
		set.LifeAreas[area] = append(set.LifeAreas[area], g)
	})
}

func (r *GoalRepository) add(in GoalInput, now time.Time, place func(*model.GoalSet, model.Goal)) (*model.Goal, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	goal := model.Goal{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
	}

	set, err := r.Get()
	if err != nil {
		return nil, err
	}
	place(&set, goal)
	if err := save(r.store, store.KeyGoals, set); err != nil {
		return nil, err
	}
	return &goal, nil
}

// SetProgress updates a goal's progress, clamped to 0-100, searching all
// partitions.
func (r *GoalRepository) SetProgress(id string, progress int) (*model.Goal, error) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	set, err := r.Get()
	if err != nil {
		return nil, err
	}
	goal := findGoal(&set, id)
	if goal == nil {
		return nil, ErrNotFound
	}
	goal.Progress = progress
	if err := save(r.store, store.KeyGoals, set); err != nil {
		return nil, err
	}
	updated := *goal
	return &updated, nil
}

func (r *GoalRepository) Delete(id string) error {
	set, err := r.Get()
	if err != nil {
		return err
	}
	if removed := removeGoal(&set.Yearly, id); !removed {
		if removed = removeGoal(&set.Monthly, id); !removed {
			for area := range set.LifeAreas {
				goals := set.LifeAreas[area]
				if removeGoal(&goals, id) {
					set.LifeAreas[area] = goals
					removed = true
					break
				}
			}
			if !removed {
				return ErrNotFound
			}
		}
	}
	return save(r.store, store.KeyGoals, set)
}

func findGoal(set *model.GoalSet, id string) *model.Goal {
	for i := range set.Yearly {
		if set.Yearly[i].ID == id {
			return &set.Yearly[i]
		}
	}
	for i := range set.Monthly {
		if set.Monthly[i].ID == id {
			return &set.Monthly[i]
		}
	}
	for _, goals := range set.LifeAreas {
		for i := range goals {
			if goals[i].ID == id {
				return &goals[i]
			}
		}
	}
	return nil
}

func removeGoal(goals *[]model.Goal, id string) bool {
	for i := range *goals {
		if (*goals)[i].ID == id {
			*goals = append((*goals)[:i], (*goals)[i+1:]...)
			return true
		}
	}
	return false
}
