package main

// main.go focuses on application initialization.
//
// Package structure:
// - geometry/ : Curve path builder for the feature card decoration
// - render/   : Rasterises decoration paths, exports PNG and SVG previews
// - models/   : Static screen data (palette, features, chips)
// - config/   : Version info, settings, config directory and logging
// - ui/       : Theme, state and all home screen components

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"meditation/config"
	"meditation/ui"
)

func main() {
	configDir, err := config.Dir()
	if err != nil {
		log.Fatalf("cannot prepare configuration directory: %v", err)
	}

	logCloser, err := config.InitLogging(configDir)
	if err != nil {
		log.Printf("[CONFIG] File logging disabled: %v", err)
	} else {
		defer logCloser.Close()
	}

	settings, err := config.LoadSettings(configDir)
	if err != nil {
		log.Printf("[CONFIG] Using default settings: %v", err)
	}

	meditationApp := app.NewWithID(config.AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    "Meditation",
		Version: config.Version,
	})
	meditationApp.Settings().SetTheme(ui.NewTheme())

	myWindow := meditationApp.NewWindow("Meditation")

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Logs", func() {
			log.Println("[UI] Logs opened (GUI)")
			ui.ShowLogWindow(meditationApp, configDir)
		}),
		fyne.NewMenuItem("Export Card Previews", func() {
			log.Println("[UI] Export card previews triggered (GUI)")
			ui.ExportPreviews(configDir, myWindow)
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		ui.NewCopySVGMenu(myWindow),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] About dialog opened")
			ui.ShowAboutDialog(meditationApp)
		}),
	)

	myWindow.SetMainMenu(fyne.NewMainMenu(fileMenu, toolsMenu, helpMenu))

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] User closed application (ctrl + q)")
		meditationApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Logs opened (ctrl + l)")
		ui.ShowLogWindow(meditationApp, configDir)
	})

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] User closed application (window)")
		meditationApp.Quit()
	})

	myWindow.Resize(fyne.NewSize(settings.WindowWidth, settings.WindowHeight))

	home := ui.BuildHomeLayout(settings.UserName)
	myWindow.SetContent(home.Content)

	myWindow.ShowAndRun()
}
