package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityPercent(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		capacity int
		want     int
	}{
		{"full day", 300, 5, 100},
		{"empty day", 0, 5, 0},
		{"one task", 90, 5, 30},
		{"over capacity not clamped", 450, 5, 150},
		{"rounds", 100, 5, 33},
		{"zero capacity", 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapacityPercent(tt.minutes, tt.capacity))
		})
	}
}

func TestStatusForPercent(t *testing.T) {
	tests := []struct {
		percent int
		want    CapacityStatus
	}{
		{0, CapacityNone},
		{80, CapacityNone},
		{81, CapacityWarning},
		{100, CapacityWarning},
		{101, CapacityDanger},
		{250, CapacityDanger},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusForPercent(tt.percent), "percent %d", tt.percent)
	}
}

func TestBarHeights(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0}, BarHeights([]int{0, 0, 0}, 150))
	assert.Equal(t, []int{25, 50, 100}, BarHeights([]int{1, 2, 4}, 100))
	assert.Equal(t, []int{150}, BarHeights([]int{7}, 150))
	assert.Empty(t, BarHeights(nil, 100))
}
