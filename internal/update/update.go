// Package update detects that the installed binary was replaced while the
// current process is running, and restarts into the new version.
package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultInterval is how often the executable is checked.
const DefaultInterval = 30 * time.Second

// Prompt is the question shown when a new version is found.
const Prompt = "New version available! Would you like to update?"

// ErrUnsupported is returned by Reload where the process cannot be replaced.
var ErrUnsupported = errors.New("update: reload not supported on this platform")

// Notice reports a newer executable on disk.
type Notice struct {
	Path    string
	ModTime time.Time
}

// Executable returns the resolved path of the running binary.
func Executable() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	return resolved, nil
}

// Supported reports whether updates can be detected for this process.
func Supported() bool {
	_, err := Executable()
	return err == nil
}

// Checker polls a file's modification time.
type Checker struct {
	path     string
	interval time.Duration
}

// NewChecker returns a checker for path. A non-positive interval uses
// DefaultInterval.
func NewChecker(path string, interval time.Duration) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Checker{path: path, interval: interval}
}

// Path returns the watched file.
func (c *Checker) Path() string {
	return c.path
}

// Watch polls until ctx is done, sending a Notice each time the file becomes
// newer than the last version seen. The channel is closed when Watch stops.
func (c *Checker) Watch(ctx context.Context) <-chan Notice {
	out := make(chan Notice, 1)
	last := c.modTime()

	go func() {
		defer close(out)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			mod := c.modTime()
			if mod.IsZero() || !mod.After(last) {
				continue
			}
			last = mod
			select {
			case out <- Notice{Path: c.path, ModTime: mod}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (c *Checker) modTime() time.Time {
	info, err := os.Stat(c.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
