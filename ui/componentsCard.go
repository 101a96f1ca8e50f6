package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"meditation/models"
	"meditation/render"
)

// FeatureCard is one tile of the feature grid.
//
// The card is a stack of:
// 1. A raster that paints the dark background and both decoration layers at
// whatever pixel size the layout hands it
// 2. The title in the top-left corner
// 3. The feature icon bottom-left and a "Start" pill bottom-right
type FeatureCard struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	// Background is the raster drawing the curved decoration
	Background *canvas.Raster

	// Start is the pill in the bottom-right corner
	Start *Pill

	feature models.Feature
}

// NewFeatureCard creates a card for f.
//
// Parameters:
//   - f: The static feature to display
//
// Returns:
//   - *FeatureCard: The card with its background raster and overlay
func NewFeatureCard(f models.Feature) *FeatureCard {
	card := &FeatureCard{feature: f}

	// The raster generator receives the measured pixel size, so the
	// decoration always matches the card's current aspect and scale.
	card.Background = canvas.NewRaster(card.draw)
	card.Background.SetMinSize(fyne.NewSize(CardMinSize, CardMinSize))

	title := widget.NewLabelWithStyle(f.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord
	title.SizeName = theme.SizeNameSubHeadingText

	icon := NewIcon(f.Icon)

	// "Start" has no destination yet; taps are only logged
	card.Start = NewPill("Start", models.ButtonBlue, 6, SectionPadding, func() {
		log.Printf("[UI] Start tapped on %q (no action)", f.Title)
	})
	card.Start.Bold = true

	bottom := container.NewBorder(nil, nil, icon, card.Start)
	overlay := container.New(
		layout.NewCustomPaddedLayout(SectionPadding, SectionPadding, SectionPadding, SectionPadding),
		container.NewBorder(title, bottom, nil, nil),
	)

	card.Card = container.NewPadded(container.NewStack(card.Background, overlay))
	return card
}

// draw is the raster generator. The corner radius is given in device
// independent units, so it is scaled by the ratio of pixels to card size.
func (c *FeatureCard) draw(w, h int) image.Image {
	radius := float32(CornerRadius)
	if size := c.Background.Size(); size.Width > 0 {
		radius *= float32(w) / size.Width
	}
	return render.Card(w, h, c.feature, radius)
}
