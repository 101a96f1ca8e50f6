package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	settingsFileName = "settings.json"
	envFileName      = ".env"

	defaultUserName     = "Yash"
	defaultWindowWidth  = 420
	defaultWindowHeight = 860
)

// Settings are the user-tunable parts of the shell. The home screen content
// itself is static and not configurable.
type Settings struct {
	UserName     string  `json:"user_name"`     // Name shown in the greeting
	WindowWidth  float32 `json:"window_width"`  // Initial window width
	WindowHeight float32 `json:"window_height"` // Initial window height
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		UserName:     defaultUserName,
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
	}
}

// LoadSettings reads settings.json from dir and then applies overrides from
// dir/.env. A missing or malformed file falls back to defaults so the app can
// always start; only unexpected I/O failures are returned.
func LoadSettings(dir string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(filepath.Join(dir, settingsFileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("[CONFIG] No %s in %s, using defaults", settingsFileName, dir)
	case err != nil:
		return s, fmt.Errorf("error reading settings file: %w", err)
	default:
		var fromFile Settings
		if err := json.Unmarshal(data, &fromFile); err != nil {
			log.Printf("[CONFIG] Ignoring malformed %s: %v", settingsFileName, err)
		} else {
			s.merge(fromFile)
		}
	}

	env, err := godotenv.Read(filepath.Join(dir, envFileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[CONFIG] Ignoring unreadable %s: %v", envFileName, err)
		}
		return s, nil
	}
	s.applyEnv(env)
	return s, nil
}

// SaveSettings writes s to dir/settings.json.
func SaveSettings(dir string, s Settings) error {
	jsonData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), jsonData, 0644); err != nil {
		return fmt.Errorf("error writing settings file: %w", err)
	}
	return nil
}

// merge copies every non-zero field of o into s.
func (s *Settings) merge(o Settings) {
	if o.UserName != "" {
		s.UserName = o.UserName
	}
	if o.WindowWidth > 0 {
		s.WindowWidth = o.WindowWidth
	}
	if o.WindowHeight > 0 {
		s.WindowHeight = o.WindowHeight
	}
}

func (s *Settings) applyEnv(env map[string]string) {
	if name := env["MEDITATION_USER_NAME"]; name != "" {
		s.UserName = name
	}
	if v, ok := parseDimension(env, "MEDITATION_WINDOW_WIDTH"); ok {
		s.WindowWidth = v
	}
	if v, ok := parseDimension(env, "MEDITATION_WINDOW_HEIGHT"); ok {
		s.WindowHeight = v
	}
}

func parseDimension(env map[string]string, key string) (float32, bool) {
	raw, ok := env[key]
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil || v <= 0 {
		log.Printf("[CONFIG] Ignoring %s=%q: not a positive number", key, raw)
		return 0, false
	}
	return float32(v), true
}
