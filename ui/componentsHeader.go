package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"meditation/models"
)

// NewGreetingSection creates the top row of the home screen: a welcome line
// with the user's name, a subtitle, and a search icon on the right.
//
// The search icon has no handler; searching is not part of the app.
func NewGreetingSection(name string) fyne.CanvasObject {
	welcome := NewHeadingText("Welcome, "+name, HeadingTextSize)
	subtitle := NewBodyText("Hope you having a great day!", models.AquaBlue)

	search := NewIcon(models.IconSearch)

	text := container.NewVBox(welcome, subtitle)
	row := container.NewBorder(nil, nil, nil, container.NewCenter(search), text)

	return padded(SectionPadding, row)
}
