package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"meditation/models"
)

// HomeScreen groups the assembled home screen with the views tests and menus
// need to reach.
type HomeScreen struct {
	// Content is the complete layout ready to be set as window content
	Content fyne.CanvasObject

	// State holds the chip selection
	State *HomeState

	Chips    *ChipSection
	Features *FeatureSection
}

// BuildHomeLayout constructs the home screen.
//
// The layout structure is:
// - Background: DeepBlue fill
// - Top: greeting, chip row, current meditation card, "Features" heading
// - Center: scrolling two-column grid of feature cards
//
// Parameters:
//   - userName: The name shown in the greeting
//
// Returns:
//   - *HomeScreen: The screen and its views
func BuildHomeLayout(userName string) *HomeScreen {
	state := NewHomeState(models.ChipLabels)

	chips := NewChipSection(state)
	features := NewFeatureSection(models.Features())

	top := container.NewVBox(
		NewGreetingSection(userName),
		chips.Container,
		NewCurrentMeditation(models.CurrentMeditation),
		features.Heading,
	)

	mainLayout := container.NewBorder(top, nil, nil, nil, features.Grid)

	// Stack the background behind all content
	background := canvas.NewRectangle(models.DeepBlue)

	return &HomeScreen{
		Content:  container.NewStack(background, mainLayout),
		State:    state,
		Chips:    chips,
		Features: features,
	}
}
