package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager writes frame statistics as CSV. A nil manager discards
// everything, so callers need not check whether output is enabled.
type OutputManager struct {
	dir    string
	frames io.WriteCloser

	headerWritten bool
}

// NewOutputManager creates dir and opens frames.csv inside it. It returns nil
// when dir is empty.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	return &OutputManager{dir: dir, frames: f}, nil
}

// newWriterOutput wraps an arbitrary writer; used by tests.
func newWriterOutput(w io.WriteCloser) *OutputManager {
	return &OutputManager{frames: w}
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteFrames appends rows to frames.csv, emitting the header once.
func (om *OutputManager) WriteFrames(rows []FrameStats) error {
	if om == nil || len(rows) == 0 {
		return nil
	}
	if !om.headerWritten {
		if err := gocsv.Marshal(rows, om.frames); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, om.frames); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// Close closes the underlying file. Later calls are no-ops.
func (om *OutputManager) Close() error {
	if om == nil || om.frames == nil {
		return nil
	}
	err := om.frames.Close()
	om.frames = nil
	return err
}
