package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"goldrun/internal/domain"
)

func newCase(t *testing.T, name string) domain.TestCase {
	t.Helper()
	dir := t.TempDir()
	return domain.TestCase{
		Name:         name,
		InputPath:    filepath.Join(dir, name+".la"),
		ExpectedPath: filepath.Join(dir, name+".expected.txt"),
	}
}

func writeSnapshot(t *testing.T, tc domain.TestCase, content string) {
	t.Helper()
	if err := os.WriteFile(tc.ExpectedPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
}

func TestComparator_Compare(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		passed   bool
	}{
		{name: "identical output passes", expected: "3\n", actual: "3\n", passed: true},
		{name: "different output fails", expected: "4\n", actual: "3\n", passed: false},
		{name: "empty against empty passes", expected: "", actual: "", passed: true},
		{name: "missing trailing newline fails", expected: "3\n", actual: "3", passed: false},
		{name: "extra trailing newline fails", expected: "3", actual: "3\n", passed: false},
		{name: "whitespace is significant", expected: "[1, 2]\n", actual: "[1,2]\n", passed: false},
	}

	comparator := NewComparator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newCase(t, "add")
			writeSnapshot(t, tc, tt.expected)

			outcome, err := comparator.Compare(tc, tt.actual)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome.Passed != tt.passed {
				t.Errorf("expected passed=%v, got %v", tt.passed, outcome.Passed)
			}
			if !outcome.HasExpected || outcome.Expected != tt.expected {
				t.Errorf("expected snapshot %q to be recorded, got %q", tt.expected, outcome.Expected)
			}
			if outcome.CaseName != "add" || outcome.Actual != tt.actual {
				t.Errorf("unexpected outcome %+v", outcome)
			}
		})
	}
}

func TestComparator_MissingSnapshot(t *testing.T) {
	tc := newCase(t, "sub")

	outcome, err := NewComparator().Compare(tc, "1\n")
	if !errors.Is(err, domain.ErrSnapshotMissing) {
		t.Fatalf("expected ErrSnapshotMissing, got %v", err)
	}
	if outcome.Passed || outcome.HasExpected {
		t.Errorf("expected a failed outcome without snapshot, got %+v", outcome)
	}
	if outcome.Actual != "1\n" {
		t.Errorf("expected actual output to be kept, got %q", outcome.Actual)
	}
}

func TestWriter_Write(t *testing.T) {
	t.Run("creates snapshot", func(t *testing.T) {
		tc := newCase(t, "add")
		if err := NewWriter().Write(tc, "3\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(tc.ExpectedPath)
		if err != nil {
			t.Fatalf("failed to read snapshot: %v", err)
		}
		if string(data) != "3\n" {
			t.Errorf("expected %q, got %q", "3\n", data)
		}
	})

	t.Run("truncates previous contents", func(t *testing.T) {
		tc := newCase(t, "add")
		writeSnapshot(t, tc, "a much longer previous snapshot\n")
		if err := NewWriter().Write(tc, "3\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, _ := os.ReadFile(tc.ExpectedPath)
		if string(data) != "3\n" {
			t.Errorf("expected %q, got %q", "3\n", data)
		}
	})

	t.Run("written snapshot compares equal", func(t *testing.T) {
		tc := newCase(t, "add")
		writer := NewWriter()
		for i := 0; i < 2; i++ {
			if err := writer.Write(tc, "[1, 2, 3]\n"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		outcome, err := NewComparator().Compare(tc, "[1, 2, 3]\n")
		if err != nil || !outcome.Passed {
			t.Errorf("expected pass after write, got %+v (%v)", outcome, err)
		}
	})

	t.Run("unwritable location fails", func(t *testing.T) {
		tc := newCase(t, "add")
		tc.ExpectedPath = filepath.Join(filepath.Dir(tc.ExpectedPath), "missing", "add.expected.txt")
		err := NewWriter().Write(tc, "3\n")
		if !errors.Is(err, domain.ErrSnapshotWrite) {
			t.Errorf("expected ErrSnapshotWrite, got %v", err)
		}
	})
}
