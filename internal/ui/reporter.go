package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"goldrun/internal/domain"
)

// Reporter writes the harness console output
type Reporter struct {
	out    io.Writer
	header *color.Color
	pass   *color.Color
	fail   *color.Color
	note   *color.Color
}

// NewReporter creates a Reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		header: color.New(color.FgCyan),
		pass:   color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		note:   color.New(color.Faint),
	}
}

// RunningAll announces a run-all batch
func (r *Reporter) RunningAll() {
	r.header.Fprintln(r.out, "Running all tests.")
}

// CompilingAll announces a regeneration batch
func (r *Reporter) CompilingAll() {
	r.header.Fprintln(r.out, "Compiling all tests.")
}

// RunningCase announces a case. Batch entries are separated by a blank line.
func (r *Reporter) RunningCase(name string, batch bool) {
	if batch {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintf(r.out, "Running test case: %s\n", name)
}

// CompilingCase announces a case whose snapshot is being regenerated
func (r *Reporter) CompilingCase(name string) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Compiling test case: %s\n", name)
}

// Result prints the pass/fail line of an outcome
func (r *Reporter) Result(outcome domain.RunOutcome) {
	if outcome.Passed {
		r.pass.Fprintf(r.out, "Test [%s] passed.\n", outcome.CaseName)
		return
	}
	r.fail.Fprintf(r.out, "Test [%s] failed.\n", outcome.CaseName)
}

// SnapshotProblem explains why a snapshot could not be compared. A nil
// error prints nothing.
func (r *Reporter) SnapshotProblem(err error) {
	if err == nil {
		return
	}
	r.note.Fprintf(r.out, "  (%v)\n", err)
}

// Summary prints the totals of a run-all batch
func (r *Reporter) Summary(summary domain.RunSummary) {
	fmt.Fprintln(r.out)
	r.pass.Fprintf(r.out, "Passed: %d\n", summary.Passed)
	if summary.Failed > 0 {
		r.fail.Fprintf(r.out, "Failed: %d\n", summary.Failed)
		return
	}
	fmt.Fprintf(r.out, "Failed: %d\n", summary.Failed)
}

// Compiled prints the number of regenerated snapshots
func (r *Reporter) Compiled(count int) {
	fmt.Fprintln(r.out)
	r.pass.Fprintf(r.out, "Successfully compiled %d test cases\n", count)
}

// CaseNotFound reports a single case without an input file
func (r *Reporter) CaseNotFound() {
	r.fail.Fprintln(r.out, "Test case not found.")
}

// Usage prints the help text shown when no mode is given
func (r *Reporter) Usage(program, ext string) {
	r.header.Fprintln(r.out, "Golden-file regression testing client.")
	fmt.Fprintf(r.out, "Usage: %s [all|test_name|compile]\n", program)
	fmt.Fprintln(r.out, "\tall: Runs all test cases.")
	fmt.Fprintf(r.out, "\tcompile: Compiles all test cases (runs .%s files and places their output into the case directory).\n", ext)
	fmt.Fprintln(r.out, "\ttest_name: Runs a specific test case.")
}
