package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"goldrun/internal/domain"
)

// Comparator checks captured output against recorded snapshots
type Comparator struct{}

// NewComparator creates a new Comparator
func NewComparator() *Comparator {
	return &Comparator{}
}

// Compare reads the snapshot of tc and compares it byte for byte with
// actual, which must already be normalized. The outcome is always usable;
// a non-nil error explains a failed outcome whose snapshot could not be read
// and wraps domain.ErrSnapshotMissing when the file does not exist.
func (c *Comparator) Compare(tc domain.TestCase, actual string) (domain.RunOutcome, error) {
	outcome := domain.RunOutcome{
		CaseName: tc.Name,
		Actual:   actual,
	}

	data, err := os.ReadFile(tc.ExpectedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return outcome, fmt.Errorf("%w: %s", domain.ErrSnapshotMissing, tc.ExpectedPath)
		}
		return outcome, fmt.Errorf("failed to read snapshot %s: %w", tc.ExpectedPath, err)
	}

	outcome.Expected = string(data)
	outcome.HasExpected = true
	outcome.Passed = outcome.Expected == actual
	return outcome, nil
}
