// Package logsink persists server-class error lines to a durable
// append-only file. The terminal HTTP error handler writes here for 5xx
// failures only; client errors are never persisted.
package logsink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Sink appends error lines to a single file, creating the parent
// directory on first write. Safe for concurrent use.
type Sink struct {
	mu   sync.Mutex
	path string
}

// New returns a Sink writing to path. The file is not touched until the
// first Append.
func New(path string) *Sink {
	return &Sink{path: path}
}

// Append writes one "[timestamp] [status] message" line.
func (s *Sink) Append(ts time.Time, status int, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("logsink: create dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logsink: open: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] [%d] %s\n", ts.UTC().Format(time.RFC3339), status, message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("logsink: write: %w", err)
	}
	return nil
}

// Path returns the sink's target file path.
func (s *Sink) Path() string { return s.path }
