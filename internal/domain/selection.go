package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// NoSelectionText is shown before any point has been clicked.
const NoSelectionText = "Click on a point to see details."

// SelectedPoint carries the fields the plotting collaborator surfaces on a
// click event: the hover label plus the three spatial coordinates.
type SelectedPoint struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// DescribeSelection renders a clicked point as the fixed-format echo string.
func DescribeSelection(p SelectedPoint) string {
	return fmt.Sprintf("Clicked Point: DateTime: %s, BX: %s, BY: %s, BZ: %s",
		p.Label, FormatCoord(p.X), FormatCoord(p.Y), FormatCoord(p.Z))
}

// FormatCoord formats a coordinate the way the original dashboard displayed
// it: shortest round-trip representation, with whole values keeping a
// trailing ".0" (4 → "4.0", -3.2 → "-3.2").
func FormatCoord(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// SelectionState tracks the click-to-inspect echo. It starts with no
// selection and moves to a selected state on the first click; there is no
// clear transition, only replacement by a newer click.
//
// The original ran under a single-threaded event loop; here the HTTP adapter
// may deliver clicks concurrently, so the state is mutex guarded.
type SelectionState struct {
	mu      sync.Mutex
	current *SelectedPoint
}

// NewSelectionState returns a state with no selection.
func NewSelectionState() *SelectionState { return &SelectionState{} }

// Click records p as the current selection and returns its description.
func (s *SelectionState) Click(p SelectedPoint) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &p
	return DescribeSelection(p)
}

// Current returns the description of the latest click, or NoSelectionText
// when nothing has been clicked yet.
func (s *SelectionState) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return NoSelectionText
	}
	return DescribeSelection(*s.current)
}
