package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"golang.design/x/clipboard"

	"meditation/config"
	"meditation/models"
	"meditation/render"
)

// ExportPreviews renders every feature card to PNG and SVG under the preview
// directory in the background and reports the result in a dialog.
func ExportPreviews(configDir string, parent fyne.Window) {
	dir := config.PreviewDir(configDir)
	log.Printf("[UI] Exporting card previews to %s", dir)

	go func() {
		written, err := render.ExportPreviews(dir, PreviewSize, models.Features())
		fyne.Do(func() {
			if err != nil {
				log.Printf("[UI] Preview export failed: %v", err)
				dialog.ShowError(fmt.Errorf("failed to export previews: %w", err), parent)
				return
			}
			dialog.ShowInformation("Previews exported",
				fmt.Sprintf("%d files written to %s", len(written), dir), parent)
		})
	}()
}

// CopyDecorationSVG places the SVG rendering of f's card on the system
// clipboard.
func CopyDecorationSVG(f models.Feature) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	svg := render.SVG(PreviewSize, PreviewSize, f)
	clipboard.Write(clipboard.FmtText, []byte(svg))

	log.Printf("[UI] Copied decoration SVG for %q (%d bytes)", f.Title, len(svg))
	return nil
}

// NewCopySVGMenu returns a menu item with one entry per feature card.
func NewCopySVGMenu(parent fyne.Window) *fyne.MenuItem {
	item := fyne.NewMenuItem("Copy Decoration SVG", nil)

	var children []*fyne.MenuItem
	for _, f := range models.Features() {
		feature := f
		children = append(children, fyne.NewMenuItem(f.Title, func() {
			if err := CopyDecorationSVG(feature); err != nil {
				dialog.ShowError(err, parent)
			}
		}))
	}
	item.ChildMenu = fyne.NewMenu("", children...)
	return item
}
