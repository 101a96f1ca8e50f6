package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files
	logFileName = "meditation.log"
)

// rotatingFile is an append-only log file that moves itself aside to
// name.1 .. name.N once it grows past maxSize.
type rotatingFile struct {
	mu       sync.Mutex
	path     string
	maxSize  int64
	maxFiles int
	file     *os.File
	size     int64
}

func openRotatingFile(path string, maxSize int64, maxFiles int) (*rotatingFile, error) {
	rf := &rotatingFile{path: path, maxSize: maxSize, maxFiles: maxFiles}

	// Check if we need to rotate before opening
	if info, err := os.Stat(path); err == nil && info.Size() >= maxSize {
		if err := rf.rotate(); err != nil {
			return nil, fmt.Errorf("failed to rotate logs: %w", err)
		}
	}
	if err := rf.open(); err != nil {
		return nil, err
	}
	return rf, nil
}

func (rf *rotatingFile) open() error {
	file, err := os.OpenFile(rf.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	rf.file = file
	rf.size = info.Size()
	return nil
}

func (rf *rotatingFile) Write(p []byte) (int, error) {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return 0, os.ErrClosed
	}

	n, err := rf.file.Write(p)
	rf.size += int64(n)
	if err != nil {
		return n, err
	}

	if rf.size >= rf.maxSize {
		if err := rf.rotate(); err != nil {
			return n, fmt.Errorf("failed to rotate logs: %w", err)
		}
		if err := rf.open(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// rotate closes the current file and shifts backups up by one, dropping the
// oldest.
func (rf *rotatingFile) rotate() error {
	if rf.file != nil {
		rf.file.Close()
		rf.file = nil
	}

	os.Remove(fmt.Sprintf("%s.%d", rf.path, rf.maxFiles)) // Ignore error if file doesn't exist

	for i := rf.maxFiles - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", rf.path, i), fmt.Sprintf("%s.%d", rf.path, i+1))
	}

	if err := os.Rename(rf.path, rf.path+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}
	rf.size = 0
	return nil
}

func (rf *rotatingFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return nil
	}
	err := rf.file.Close()
	rf.file = nil
	return err
}

// InitLogging sends the standard logger to stderr and to a rotating
// meditation.log in dir. The returned closer flushes and closes the file.
func InitLogging(dir string) (io.Closer, error) {
	rf, err := openRotatingFile(filepath.Join(dir, logFileName), maxLogSize, maxLogFiles)
	if err != nil {
		return nil, err
	}

	log.SetOutput(io.MultiWriter(os.Stderr, rf))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	log.Printf("[CONFIG] === Meditation %s (%s) ===", Version, GitCommit)
	log.Printf("[CONFIG] Log file: %s", rf.path)
	return rf, nil
}
