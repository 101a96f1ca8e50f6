package ui

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"

	"meditation/config"
)

const maxLogLines = 1000 // Lines kept on screen while following the log

// lineBuffer keeps the most recent lines of a followed file.
type lineBuffer struct {
	lines []string
	limit int
}

func newLineBuffer(limit int) *lineBuffer {
	return &lineBuffer{lines: make([]string, 0, limit), limit: limit}
}

// Append adds a line, dropping the oldest one once the limit is reached.
func (b *lineBuffer) Append(line string) {
	if len(b.lines) == b.limit {
		copy(b.lines, b.lines[1:])
		b.lines = b.lines[:len(b.lines)-1]
	}
	b.lines = append(b.lines, line)
}

// Filter returns the buffered lines containing query, case-insensitively.
func (b *lineBuffer) Filter(query string) []string {
	queryLower := strings.ToLower(query)
	var filtered []string
	for _, line := range b.lines {
		if strings.Contains(strings.ToLower(line), queryLower) {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

func (b *lineBuffer) String() string {
	return strings.Join(b.lines, "\n")
}

// ShowLogWindow opens a window that follows meditation.log live. The tail is
// stopped when the window is closed.
func ShowLogWindow(app fyne.App, configDir string) {
	logFilePath := config.LogPath(configDir)

	logWindow := app.NewWindow("Meditation Log")
	logWindow.Resize(fyne.NewSize(800, 600))

	logLabel := widget.NewLabel("Waiting for log output...")
	logLabel.Wrapping = fyne.TextWrapWord
	scroll := container.NewScroll(logLabel)

	buffer := newLineBuffer(maxLogLines)
	query := ""

	updateDisplay := func() {
		if query == "" {
			logLabel.SetText(buffer.String())
			scroll.ScrollToBottom()
			return
		}
		filtered := buffer.Filter(query)
		if len(filtered) == 0 {
			logLabel.SetText(fmt.Sprintf("No results found for: %s", query))
			return
		}
		logLabel.SetText(strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches]", len(filtered)))
	}

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")
	searchEntry.OnSubmitted = func(text string) {
		query = text
		updateDisplay()
	}

	searchButton := widget.NewButton("Search", func() {
		query = searchEntry.Text
		updateDisplay()
	})
	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		query = ""
		updateDisplay()
	})
	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(configDir, logWindow)
	})

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, openDirButton),
		searchEntry)

	logWindow.SetContent(container.NewBorder(searchBox, nil, nil, nil, scroll))

	t, err := tail.TailFile(logFilePath, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekStart},
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		logLabel.SetText(fmt.Sprintf("Failed to open log file: %v", err))
		logWindow.Show()
		return
	}

	logWindow.SetOnClosed(func() {
		log.Println("[UI] Log window closed")
		if err := t.Stop(); err != nil {
			log.Printf("[UI] Error stopping log tail: %v", err)
		}
		t.Cleanup()
	})

	go func() {
		for line := range t.Lines {
			if line.Err != nil {
				continue
			}
			text := line.Text
			fyne.Do(func() {
				buffer.Append(text)
				updateDisplay()
			})
		}
	}()

	logWindow.Show()
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	if err := cmd.Start(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %w", err), parent)
	}
}
