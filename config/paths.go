package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where settings, logs and exported previews live.
const DefaultDir = "~/.config/meditation"

// ExpandPath expands ~ to the user's home directory, or returns the path as-is
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// Dir returns the configuration directory, creating it when missing.
func Dir() (string, error) {
	return ensureDir(DefaultDir)
}

func ensureDir(path string) (string, error) {
	dir, err := ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("cannot verify local configuration directory: %w", err)
	}

	_, err = os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", dir, err)
		}
		log.Printf("[CONFIG] Directory %s created successfully.", dir)
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", dir, err)
	}

	return dir, nil
}

// LogPath returns the application log file inside dir.
func LogPath(dir string) string {
	return filepath.Join(dir, logFileName)
}

// PreviewDir returns the directory card previews are exported to.
func PreviewDir(dir string) string {
	return filepath.Join(dir, "previews")
}
