package render

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"meditation/models"
)

// PreviewRadius is the corner radius used for exported previews, matching the
// on-screen card at 1x scale.
const PreviewRadius = 10

// SavePNG encodes img as PNG at outputPath, creating parent directories.
func SavePNG(img image.Image, outputPath string) error {
	if img == nil || img.Bounds().Empty() {
		return errors.New("empty image")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", outputPath, err)
	}
	// imaging picks the encoder from the file extension
	if err := imaging.Save(img, outputPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputPath, err)
	}
	return nil
}

// ExportPreviews writes a PNG and an SVG rendering of every feature card into
// dir at size x size pixels. It returns the paths written, in order.
func ExportPreviews(dir string, size int, features []models.Feature) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid preview size %d", size)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating preview directory %s: %w", dir, err)
	}

	written := make([]string, 0, len(features)*2)
	for _, f := range features {
		base := filepath.Join(dir, Slug(f.Title))

		pngPath := base + ".png"
		if err := SavePNG(Card(size, size, f, PreviewRadius), pngPath); err != nil {
			return written, err
		}
		written = append(written, pngPath)

		svgPath := base + ".svg"
		if err := os.WriteFile(svgPath, []byte(SVG(size, size, f)), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", svgPath, err)
		}
		written = append(written, svgPath)

		log.Printf("[RENDER] Exported preview for %q to %s.{png,svg}", f.Title, base)
	}
	return written, nil
}

// Slug turns a feature title into a file name: lower case, words joined by
// dashes, anything other than letters and digits dropped.
func Slug(title string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	if sb.Len() == 0 {
		return "feature"
	}
	return sb.String()
}
