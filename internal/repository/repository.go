// Package repository implements CRUD over each entity collection on top of
// the document store. Every write is a full read-modify-write of the
// collection under its key.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"planner/internal/store"
)

// ErrNotFound is returned by update/delete on an unknown ID. The collection
// is left untouched; nothing panics.
var ErrNotFound = errors.New("record not found")

func newID() string {
	return uuid.NewString()
}

// loadSlice reads a collection, treating an absent key as empty. A stored
// value that no longer decodes is logged and treated as absent too, so one
// corrupt collection cannot wedge the planner.
func loadSlice[T any](s store.Store, key string) ([]T, error) {
	raw, err := s.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if raw == nil {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("repository: decode %s failed: %v", key, err)
		return nil, nil
	}
	return items, nil
}

// loadObject reads a single-document key, returning nil when absent or
// undecodable.
func loadObject[T any](s store.Store, key string) (*T, error) {
	raw, err := s.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if raw == nil {
		return nil, nil
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Printf("repository: decode %s failed: %v", key, err)
		return nil, nil
	}
	return &value, nil
}

func save(s store.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(key, data)
}
