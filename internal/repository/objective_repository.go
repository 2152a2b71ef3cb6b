package repository

import (
	"fmt"

	"planner/internal/model"
	"planner/internal/store"
)

// ObjectiveRepository handles CRUD for weekly objectives.
type ObjectiveRepository struct {
	store store.Store
}

func NewObjectiveRepository(s store.Store) *ObjectiveRepository {
	return &ObjectiveRepository{store: s}
}

func (r *ObjectiveRepository) List() ([]model.WeeklyObjective, error) {
	return loadSlice[model.WeeklyObjective](r.store, store.KeyObjectives)
}

// ListForWeek returns the objectives for the week starting at the given
// Monday day string.
func (r *ObjectiveRepository) ListForWeek(weekStart string) ([]model.WeeklyObjective, error) {
	objectives, err := r.List()
	if err != nil {
		return nil, err
	}
	var out []model.WeeklyObjective
	for _, o := range objectives {
		if o.WeekStart == weekStart {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *ObjectiveRepository) Add(title, weekStart string) (*model.WeeklyObjective, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	objective := model.WeeklyObjective{
		ID:        newID(),
		Title:     title,
		WeekStart: weekStart,
	}

	objectives, err := r.List()
	if err != nil {
		return nil, err
	}
	objectives = append(objectives, objective)
	if err := save(r.store, store.KeyObjectives, objectives); err != nil {
		return nil, err
	}
	return &objective, nil
}

// Toggle flips the objective's completed flag.
func (r *ObjectiveRepository) Toggle(id string) (*model.WeeklyObjective, error) {
	objectives, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range objectives {
		if objectives[i].ID != id {
			continue
		}
		objectives[i].Completed = !objectives[i].Completed
		if err := save(r.store, store.KeyObjectives, objectives); err != nil {
			return nil, err
		}
		updated := objectives[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (r *ObjectiveRepository) Delete(id string) error {
	objectives, err := r.List()
	if err != nil {
		return err
	}
	for i := range objectives {
		if objectives[i].ID == id {
			objectives = append(objectives[:i], objectives[i+1:]...)
			return save(r.store, store.KeyObjectives, objectives)
		}
	}
	return ErrNotFound
}
