package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, "Yash", s.UserName)
}

func TestLoadSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"),
		[]byte(`{"user_name": "Ana", "window_width": 500}`), 0644))

	s, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "Ana", s.UserName)
	assert.Equal(t, float32(500), s.WindowWidth)
	assert.Equal(t, float32(defaultWindowHeight), s.WindowHeight)
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0644))

	s, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveSettings(dir, Settings{UserName: "Ana", WindowWidth: 500, WindowHeight: 900}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"MEDITATION_USER_NAME=Sam\nMEDITATION_WINDOW_HEIGHT=700\nMEDITATION_WINDOW_WIDTH=wide\n"), 0644))

	s, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "Sam", s.UserName)
	assert.Equal(t, float32(500), s.WindowWidth)
	assert.Equal(t, float32(700), s.WindowHeight)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := Settings{UserName: "Kai", WindowWidth: 320, WindowHeight: 640}
	require.NoError(t, SaveSettings(dir, want))

	got, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/.config/meditation")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "meditation"), got)

	got, err = ExpandPath("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)
}

func TestEnsureDirCreates(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b")
	dir, err := ensureDir(target)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
