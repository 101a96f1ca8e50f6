package ui

import "log"

// HomeState holds the only mutable state of the home screen: which filter
// chip is selected.
//
// Views register callbacks to be told when the selection changes, following
// the same observer pattern used across the UI. All access happens on the
// fyne UI goroutine.
type HomeState struct {
	// Chips are the labels of the filter chips, in display order
	Chips []string

	// SelectedChipIndex is the zero-based index of the highlighted chip
	SelectedChipIndex int

	// OnChipSelected is called after the selection changes
	OnChipSelected []func(index int)
}

// NewHomeState creates the state for a screen showing the given chips.
// The first chip starts selected.
func NewHomeState(chips []string) *HomeState {
	return &HomeState{
		Chips:             chips,
		SelectedChipIndex: 0,
		OnChipSelected:    make([]func(int), 0),
	}
}

// SelectChip updates the selected chip and notifies all registered callbacks.
// Indices outside the chip list are ignored.
func (s *HomeState) SelectChip(index int) {
	if index < 0 || index >= len(s.Chips) {
		log.Printf("[UI] Ignoring selection of chip %d (have %d)", index, len(s.Chips))
		return
	}

	s.SelectedChipIndex = index
	log.Printf("[UI] Chip selected: %s", s.Chips[index])

	for _, callback := range s.OnChipSelected {
		callback(index)
	}
}

// IsSelected reports whether the chip at index is the highlighted one.
func (s *HomeState) IsSelected(index int) bool {
	return s.SelectedChipIndex == index
}

// RegisterChipSelectedCallback registers a callback to be called when the chip
// selection changes. Callbacks run in registration order.
func (s *HomeState) RegisterChipSelectedCallback(callback func(int)) {
	s.OnChipSelected = append(s.OnChipSelected, callback)
}
