package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"meditation/models"
)

// ChipSection is the horizontally scrolling row of filter chips.
// Tapping a chip selects it in the shared HomeState; the section listens for
// selection changes and recolours its chips.
type ChipSection struct {
	// Container is the complete UI component ready to be added to the layout
	Container fyne.CanvasObject

	// Chips are the pill widgets, one per label
	Chips []*Pill

	state *HomeState
}

// NewChipSection builds one chip per label in state.Chips.
func NewChipSection(state *HomeState) *ChipSection {
	view := &ChipSection{state: state}

	row := container.NewHBox()
	for i, label := range state.Chips {
		index := i
		chip := NewPill(label, chipColor(state.IsSelected(index)), SectionPadding, SectionPadding, func() {
			state.SelectChip(index)
		})
		view.Chips = append(view.Chips, chip)
		// theme padding keeps neighbouring chips apart
		row.Add(container.NewPadded(chip))
	}

	state.RegisterChipSelectedCallback(func(int) {
		view.refresh()
	})

	view.Container = container.NewHScroll(row)
	return view
}

// refresh recolours every chip from the current selection.
func (v *ChipSection) refresh() {
	for i, chip := range v.Chips {
		chip.SetFill(chipColor(v.state.IsSelected(i)))
	}
}

func chipColor(selected bool) color.Color {
	if selected {
		return models.ButtonBlue
	}
	return models.DarkerButtonBlue
}
