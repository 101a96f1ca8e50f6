package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"meditation/models"
)

// Theme constants define the visual appearance of the home screen.
// Colours come from the shared palette in models so the card renderer and the
// widgets always agree.

// Text size constants for consistent typography
const (
	// HeadingTextSize is used for the greeting and the "Features" heading
	HeadingTextSize = 24

	// TitleTextSize is used for card titles
	TitleTextSize = 20

	// BodyTextSize is used for subtitles and chip labels
	BodyTextSize = 15
)

// Layout constants
const (
	// SectionPadding is the gap around each section of the home screen
	SectionPadding = 15

	// CornerRadius rounds chips, the current meditation card and feature cards
	CornerRadius = 10

	// CardMinSize is the minimum edge length of a feature card
	CardMinSize = 150

	// PlayButtonSize is the diameter of the round play button
	PlayButtonSize = 40

	// PreviewSize is the edge length of exported card previews
	PreviewSize = 200
)

// meditationTheme keeps the stock fyne look but forces the dark variant and
// maps foreground, background and primary onto the app palette.
type meditationTheme struct{}

var _ fyne.Theme = meditationTheme{}

// NewTheme returns the application theme.
func NewTheme() fyne.Theme {
	return meditationTheme{}
}

func (meditationTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameForeground:
		return models.TextWhite
	case theme.ColorNameBackground:
		return models.DeepBlue
	case theme.ColorNamePrimary:
		return models.ButtonBlue
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (meditationTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (meditationTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (meditationTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
