package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// SnapshotChecker reports whether a case has a recorded snapshot
type SnapshotChecker interface {
	HasSnapshot(name string) bool
}

// Formatter formats case listings
type Formatter struct {
	out       io.Writer
	snapshots SnapshotChecker
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer, snapshots SnapshotChecker) *Formatter {
	return &Formatter{
		out:       out,
		snapshots: snapshots,
	}
}

// PrintCaseList prints the discovered cases as a tree under dir.
// Cases without a snapshot are marked with [no snapshot] in red.
func (f *Formatter) PrintCaseList(dir string, names []string) {
	if len(names) == 0 {
		color.New(color.FgYellow).Fprintf(f.out, "No test cases found in %s\n", dir)
		return
	}

	color.New(color.FgGreen).Fprintf(f.out, "Found %d test case(s) in %s:\n", len(names), dir)

	missing := 0
	for i, name := range names {
		connector := "├── "
		if i == len(names)-1 {
			connector = "└── "
		}

		marker := ""
		if f.snapshots != nil && !f.snapshots.HasSnapshot(name) {
			marker = " " + color.RedString("[no snapshot]")
			missing++
		}

		fmt.Fprintf(f.out, "%s%s%s\n", connector, color.CyanString(name), marker)
	}

	if missing > 0 {
		fmt.Fprintln(f.out)
		color.New(color.FgYellow).Fprintf(f.out, "%d case(s) have no snapshot; run compile to record them\n", missing)
	}
}
