package snapshot

import (
	"fmt"
	"os"

	"goldrun/internal/domain"
)

// Writer persists regenerated snapshots
type Writer struct{}

// NewWriter creates a new Writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write replaces the snapshot of tc with output, creating it if needed
func (w *Writer) Write(tc domain.TestCase, output string) error {
	if err := os.WriteFile(tc.ExpectedPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("%w %s: %v", domain.ErrSnapshotWrite, tc.ExpectedPath, err)
	}
	return nil
}
