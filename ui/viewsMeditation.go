package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"meditation/models"
)

// NewCurrentMeditation creates the highlighted session card: title and
// subtitle on the left, a round play button on the right.
//
// The play button is decorative; playback is not part of the app.
func NewCurrentMeditation(m models.Meditation) fyne.CanvasObject {
	bg := NewRoundedBackground(m.Color)

	title := NewHeadingText(m.Title, TitleTextSize)
	subtitle := NewBodyText(m.Subtitle, models.TextWhite)
	text := container.NewVBox(title, subtitle)

	row := container.NewBorder(nil, nil, nil, container.NewCenter(newPlayButton()), text)
	content := container.New(layout.NewCustomPaddedLayout(20, 20, SectionPadding, SectionPadding), row)

	return padded(SectionPadding, container.NewStack(bg, content))
}

func newPlayButton() fyne.CanvasObject {
	circle := canvas.NewCircle(models.ButtonBlue)
	icon := NewIcon(models.IconPlay)

	return container.NewGridWrap(
		fyne.NewSize(PlayButtonSize, PlayButtonSize),
		container.NewStack(circle, padded(10, icon)),
	)
}
