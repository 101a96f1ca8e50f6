package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"meditation/models"
)

// FeatureColumns is the number of cards per grid row.
const FeatureColumns = 2

// FeatureSection shows the "Features" heading above a scrolling two-column
// grid of feature cards.
type FeatureSection struct {
	// Heading is the section title, kept outside the scroll area
	Heading fyne.CanvasObject

	// Grid is the scrollable card grid
	Grid fyne.CanvasObject

	// Cards are the feature cards in display order
	Cards []*FeatureCard
}

// NewFeatureSection creates one card per feature.
func NewFeatureSection(features []models.Feature) *FeatureSection {
	view := &FeatureSection{
		Heading: padded(SectionPadding, NewHeadingText("Features", HeadingTextSize)),
	}

	grid := container.NewGridWithColumns(FeatureColumns)
	for _, f := range features {
		card := NewFeatureCard(f)
		view.Cards = append(view.Cards, card)
		grid.Add(card.Card)
	}

	view.Grid = container.NewVScroll(padded(SectionPadding/2, grid))
	return view
}
