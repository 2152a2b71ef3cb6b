package repository

import (
	"fmt"

	"planner/internal/model"
	"planner/internal/store"
)

// DayLogRepository manages per-day check-ins. The log is sparse: days
// without activity have no entry at all, which is distinct from an entry
// with all-nil ratings.
type DayLogRepository struct {
	store store.Store
}

func NewDayLogRepository(s store.Store) *DayLogRepository {
	return &DayLogRepository{store: s}
}

func (r *DayLogRepository) All() (model.DayLog, error) {
	log, err := loadObject[model.DayLog](r.store, store.KeyDailyData)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return model.DayLog{}, nil
	}
	return *log, nil
}

// Get returns the entry for one day, or nil when none exists.
func (r *DayLogRepository) Get(day string) (*model.DayEntry, error) {
	log, err := r.All()
	if err != nil {
		return nil, err
	}
	entry, ok := log[day]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Range returns the entries whose day falls in [start, end] inclusive.
func (r *DayLogRepository) Range(start, end string) (model.DayLog, error) {
	log, err := r.All()
	if err != nil {
		return nil, err
	}
	out := model.DayLog{}
	for day, entry := range log {
		if day >= start && day <= end {
			out[day] = entry
		}
	}
	return out, nil
}

// DayPatch is a shallow patch over a day's entry; nil fields keep their
// current value. Ratings must be 1-5.
type DayPatch struct {
	Highlight  *string
	Energy     *int
	Mood       *int
	Sleep      *int
	Reflection *string
	Wins       *string
}

// Put merges the patch into the day's entry, creating it if absent.
func (r *DayLogRepository) Put(day string, patch DayPatch) (*model.DayEntry, error) {
	for name, rating := range map[string]*int{"energy": patch.Energy, "mood": patch.Mood, "sleep": patch.Sleep} {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return nil, fmt.Errorf("%s must be between 1 and 5", name)
		}
	}

	log, err := r.All()
	if err != nil {
		return nil, err
	}
	entry := log[day]
	if patch.Highlight != nil {
		entry.Highlight = *patch.Highlight
	}
	if patch.Energy != nil {
		entry.Energy = patch.Energy
	}
	if patch.Mood != nil {
		entry.Mood = patch.Mood
	}
	if patch.Sleep != nil {
		entry.Sleep = patch.Sleep
	}
	if patch.Reflection != nil {
		entry.Reflection = *patch.Reflection
	}
	if patch.Wins != nil {
		entry.Wins = *patch.Wins
	}
	log[day] = entry
	if err := save(r.store, store.KeyDailyData, log); err != nil {
		return nil, err
	}
	return &entry, nil
}
