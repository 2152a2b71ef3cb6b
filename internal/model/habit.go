package model

import (
	"fmt"
	"strings"
	"time"
)

type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyWeekly   Frequency = "weekly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekdays, FrequencyWeekly:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// Habit is a recurring practice tracked by completion days.
// CompletedDates holds YYYY-MM-DD day strings and is semantically a set:
// a day appears at most once. CurrentStreak is cached but always derived
// from CompletedDates on every mutation; LongestStreak only ever grows.
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Frequency      Frequency `json:"frequency"`
	CompletedDates []string  `json:"completedDates"`
	CurrentStreak  int       `json:"currentStreak"`
	LongestStreak  int       `json:"longestStreak"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CompletedOn reports whether the habit was checked on the given day.
func (h *Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
