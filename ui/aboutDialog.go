package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"meditation/config"
)

func ShowAboutDialog(app fyne.App) {
	title := widget.NewLabel("Meditation")
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)
	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"A calm home screen for your daily meditation.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"Features:\n" +
			"• Filter chips\n" +
			"• Daily thought\n" +
			"• Feature cards with layered wave backgrounds\n" +
			"• Export card previews as PNG and SVG",
	)
	features.Wrapping = fyne.TextWrapWord

	// Declare window first so the close button can reference it
	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	mainContent := container.NewVBox(
		container.NewCenter(title),
		container.NewCenter(version),
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
	)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(closeBtn),
	)

	content := container.NewBorder(nil, bottom, nil, nil, container.NewScroll(mainContent))

	aboutWin = app.NewWindow("About Meditation")
	aboutWin.SetContent(content)
	aboutWin.Resize(fyne.NewSize(400, 400))
	aboutWin.SetFixedSize(true)
	aboutWin.Show()
}
