package model

import (
	"fmt"
	"strings"
	"time"
)

type LifeArea string

const (
	LifeAreaCareer        LifeArea = "career"
	LifeAreaHealth        LifeArea = "health"
	LifeAreaRelationships LifeArea = "relationships"
	LifeAreaFinance       LifeArea = "finance"
	LifeAreaLearning      LifeArea = "learning"
	LifeAreaCreativity    LifeArea = "creativity"
)

// LifeAreas lists every area in display order.
var LifeAreas = []LifeArea{
	LifeAreaCareer,
	LifeAreaHealth,
	LifeAreaRelationships,
	LifeAreaFinance,
	LifeAreaLearning,
	LifeAreaCreativity,
}

func (a LifeArea) IsValid() bool {
	for _, known := range LifeAreas {
		if a == known {
			return true
		}
	}
	return false
}

func ParseLifeArea(input string) (LifeArea, error) {
	a := LifeArea(strings.TrimSpace(strings.ToLower(input)))
	if !a.IsValid() {
		return "", fmt.Errorf("invalid life area: %q", input)
	}
	return a, nil
}

// Goal tracks progress toward an outcome, 0-100 percent.
type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GoalSet holds the three goal partitions persisted under one key.
type GoalSet struct {
	Yearly    []Goal              `json:"yearly"`
	Monthly   []Goal              `json:"monthly"`
	LifeAreas map[LifeArea][]Goal `json:"lifeAreas"`
}
