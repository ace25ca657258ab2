package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeSelection(t *testing.T) {
	t.Run("literal round trip", func(t *testing.T) {
		p := SelectedPoint{Label: "2024-05-10 12:00", X: -3.2, Y: 1.1, Z: 4.0}
		assert.Equal(t,
			"Clicked Point: DateTime: 2024-05-10 12:00, BX: -3.2, BY: 1.1, BZ: 4.0",
			DescribeSelection(p))
	})

	t.Run("unknown time label passes through", func(t *testing.T) {
		p := SelectedPoint{Label: "unknown time", X: 0, Y: 0, Z: 0}
		assert.Equal(t,
			"Clicked Point: DateTime: unknown time, BX: 0.0, BY: 0.0, BZ: 0.0",
			DescribeSelection(p))
	})
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"negative fraction", -3.2, "-3.2"},
		{"whole value keeps decimal", 4.0, "4.0"},
		{"zero", 0, "0.0"},
		{"small fraction", 1.1, "1.1"},
		{"negative whole", -12, "-12.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCoord(tt.value))
		})
	}
}

func TestSelectionState(t *testing.T) {
	t.Run("initial state is placeholder", func(t *testing.T) {
		s := NewSelectionState()
		assert.Equal(t, NoSelectionText, s.Current())
	})

	t.Run("click transitions to selected", func(t *testing.T) {
		s := NewSelectionState()
		echo := s.Click(SelectedPoint{Label: "2024-05-10 12:00", X: -3.2, Y: 1.1, Z: 4.0})

		assert.Equal(t,
			"Clicked Point: DateTime: 2024-05-10 12:00, BX: -3.2, BY: 1.1, BZ: 4.0",
			echo)
		assert.Equal(t, echo, s.Current())
	})

	t.Run("new click replaces previous selection", func(t *testing.T) {
		s := NewSelectionState()
		s.Click(SelectedPoint{Label: "first", X: 1, Y: 2, Z: 3})
		s.Click(SelectedPoint{Label: "second", X: 4, Y: 5, Z: 6})

		assert.Contains(t, s.Current(), "second")
		assert.NotContains(t, s.Current(), "first")
	})
}
