package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"meditation/models"
)

// NewHeadingText creates large bold text in the app's text colour.
func NewHeadingText(text string, size float32) *canvas.Text {
	t := canvas.NewText(text, models.TextWhite)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: true}
	return t
}

// NewBodyText creates regular body text in the given colour.
func NewBodyText(text string, c color.Color) *canvas.Text {
	t := canvas.NewText(text, c)
	t.TextSize = BodyTextSize
	return t
}

// NewRoundedBackground creates a filled rectangle with the standard corner
// radius, for stacking behind section content.
func NewRoundedBackground(c color.Color) *canvas.Rectangle {
	bg := canvas.NewRectangle(c)
	bg.CornerRadius = CornerRadius
	return bg
}

// padded surrounds content with the same gap on every side.
func padded(pad float32, content fyne.CanvasObject) *fyne.Container {
	return container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), content)
}

// iconResource maps an icon id to a bundled theme icon.
func iconResource(id models.IconID) fyne.Resource {
	switch id {
	case models.IconHeadphone:
		return theme.MediaMusicIcon()
	case models.IconVideocam:
		return theme.MediaVideoIcon()
	case models.IconSearch:
		return theme.SearchIcon()
	case models.IconPlay:
		return theme.MediaPlayIcon()
	default:
		return theme.QuestionIcon()
	}
}

// NewIcon creates an icon widget for id.
func NewIcon(id models.IconID) *widget.Icon {
	return widget.NewIcon(iconResource(id))
}
