package repository

import (
	"fmt"
	"sort"

	"planner/internal/dateutil"
	"planner/internal/model"
	"planner/internal/store"
)

// TimeBlockRepository handles CRUD for schedule blocks. Blocks are allowed
// to overlap; no collision check is performed.
type TimeBlockRepository struct {
	store store.Store
}

func NewTimeBlockRepository(s store.Store) *TimeBlockRepository {
	return &TimeBlockRepository{store: s}
}

// TimeBlockInput is the caller-supplied part of a new block.
type TimeBlockInput struct {
	Title     string
	StartTime string
	EndTime   string
	Category  model.Category
	Date      string
}

func (r *TimeBlockRepository) List() ([]model.TimeBlock, error) {
	return loadSlice[model.TimeBlock](r.store, store.KeyTimeBlocks)
}

// ListForDate returns the blocks for one day ordered by start time.
func (r *TimeBlockRepository) ListForDate(day string) ([]model.TimeBlock, error) {
	blocks, err := r.List()
	if err != nil {
		return nil, err
	}
	var out []model.TimeBlock
	for _, b := range blocks {
		if b.Date == day {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *TimeBlockRepository) Add(in TimeBlockInput) (*model.TimeBlock, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if _, _, err := dateutil.ParseClock(in.StartTime); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	if _, _, err := dateutil.ParseClock(in.EndTime); err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	if !in.Category.IsValid() {
		in.Category = model.CategoryPersonal
	}

	block := model.TimeBlock{
		ID:        newID(),
		Title:     in.Title,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Category:  in.Category,
		Date:      in.Date,
	}

	blocks, err := r.List()
	if err != nil {
		return nil, err
	}
	blocks = append(blocks, block)
	if err := save(r.store, store.KeyTimeBlocks, blocks); err != nil {
		return nil, err
	}
	return &block, nil
}

// TimeBlockPatch is a shallow patch: nil fields keep their current value.
type TimeBlockPatch struct {
	Title     *string
	StartTime *string
	EndTime   *string
	Category  *model.Category
	Date      *string
}

func (r *TimeBlockRepository) Update(id string, patch TimeBlockPatch) (*model.TimeBlock, error) {
	blocks, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range blocks {
		if blocks[i].ID != id {
			continue
		}
		b := &blocks[i]
		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.StartTime != nil {
			if _, _, err := dateutil.ParseClock(*patch.StartTime); err != nil {
				return nil, fmt.Errorf("start time: %w", err)
			}
			b.StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			if _, _, err := dateutil.ParseClock(*patch.EndTime); err != nil {
				return nil, fmt.Errorf("end time: %w", err)
			}
			b.EndTime = *patch.EndTime
		}
		if patch.Category != nil {
			b.Category = *patch.Category
		}
		if patch.Date != nil {
			b.Date = *patch.Date
		}
		if err := save(r.store, store.KeyTimeBlocks, blocks); err != nil {
			return nil, err
		}
		updated := *b
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (r *TimeBlockRepository) Delete(id string) error {
	blocks, err := r.List()
	if err != nil {
		return err
	}
	for i := range blocks {
		if blocks[i].ID == id {
			blocks = append(blocks[:i], blocks[i+1:]...)
			return save(r.store, store.KeyTimeBlocks, blocks)
		}
	}
	return ErrNotFound
}
