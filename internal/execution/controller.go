package execution

import (
	"context"
	"fmt"
	"io"

	"goldrun/internal/discovery"
	"goldrun/internal/domain"
	"goldrun/internal/ui"
)

// State is the lifecycle state of a Controller invocation
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// CaseStore enumerates and resolves cases
type CaseStore interface {
	DiscoverAll() ([]string, error)
	Resolve(name string) domain.TestCase
	Exists(name string) bool
}

// Comparator decides pass/fail for captured output
type Comparator interface {
	Compare(tc domain.TestCase, actual string) (domain.RunOutcome, error)
}

// SnapshotWriter persists regenerated snapshots
type SnapshotWriter interface {
	Write(tc domain.TestCase, output string) error
}

// Controller runs cases one at a time in one of three modes: a single
// case, all cases, or regeneration of all snapshots
type Controller struct {
	store      CaseStore
	invoker    Invoker
	comparator Comparator
	writer     SnapshotWriter
	reporter   *ui.Reporter
	filter     *discovery.Filter

	nameFilter  string
	progressOut io.Writer
	state       State
}

// NewController creates a new Controller
func NewController(store CaseStore, invoker Invoker, comparator Comparator, writer SnapshotWriter, reporter *ui.Reporter) *Controller {
	return &Controller{
		store:      store,
		invoker:    invoker,
		comparator: comparator,
		writer:     writer,
		reporter:   reporter,
		filter:     discovery.NewFilter(),
	}
}

// SetNameFilter restricts batch modes to case names matching pattern
func (c *Controller) SetNameFilter(pattern string) {
	c.nameFilter = pattern
}

// SetProgress enables a progress bar written to out during batch modes
func (c *Controller) SetProgress(out io.Writer) {
	c.progressOut = out
}

// State returns the state of the current or last invocation
func (c *Controller) State() State {
	return c.state
}

// RunOne runs a single named case and prints its result
func (c *Controller) RunOne(ctx context.Context, name string) (domain.RunOutcome, error) {
	c.state = StateRunning

	if !c.store.Exists(name) {
		c.state = StateAborted
		c.reporter.CaseNotFound()
		return domain.RunOutcome{CaseName: name}, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, name)
	}

	c.reporter.RunningCase(name, false)
	outcome, problem, err := c.runCase(ctx, c.store.Resolve(name))
	if err != nil {
		c.state = StateAborted
		return outcome, err
	}

	c.reporter.Result(outcome)
	c.reporter.SnapshotProblem(problem)
	c.state = StateCompleted
	return outcome, nil
}

// RunAll runs every discovered case and prints a summary. A case without
// a snapshot counts as failed; an unavailable subject aborts the batch.
func (c *Controller) RunAll(ctx context.Context) (domain.RunSummary, []domain.RunOutcome, error) {
	var summary domain.RunSummary
	c.state = StateRunning

	c.reporter.RunningAll()
	names, err := c.discover()
	if err != nil {
		c.state = StateAborted
		return summary, nil, err
	}

	var progress *ui.ProgressBar
	if c.progressOut != nil && len(names) > 0 {
		progress = ui.NewProgressBar(c.progressOut, len(names), "Running tests")
	}

	outcomes := make([]domain.RunOutcome, 0, len(names))
	for _, name := range names {
		c.reporter.RunningCase(name, true)

		outcome, problem, err := c.runCase(ctx, c.store.Resolve(name))
		if err != nil {
			c.state = StateAborted
			return summary, outcomes, err
		}

		c.reporter.Result(outcome)
		c.reporter.SnapshotProblem(problem)
		summary.Record(outcome)
		outcomes = append(outcomes, outcome)
		if progress != nil {
			progress.Update(summary.Passed, summary.Failed)
		}
	}
	if progress != nil {
		progress.Finish()
	}

	c.reporter.Summary(summary)
	c.state = StateCompleted
	return summary, outcomes, nil
}

// RegenerateAll rewrites the snapshot of every discovered case with the
// subject's current output. Any failure aborts the batch.
func (c *Controller) RegenerateAll(ctx context.Context) (int, error) {
	c.state = StateRunning

	c.reporter.CompilingAll()
	names, err := c.discover()
	if err != nil {
		c.state = StateAborted
		return 0, err
	}

	var progress *ui.ProgressBar
	if c.progressOut != nil && len(names) > 0 {
		progress = ui.NewProgressBar(c.progressOut, len(names), "Compiling tests")
	}

	count := 0
	for _, name := range names {
		c.reporter.CompilingCase(name)

		if err := c.regenerate(ctx, c.store.Resolve(name)); err != nil {
			c.state = StateAborted
			return count, err
		}
		count++
		if progress != nil {
			progress.Advance()
		}
	}
	if progress != nil {
		progress.Finish()
	}

	c.reporter.Compiled(count)
	c.state = StateCompleted
	return count, nil
}

func (c *Controller) discover() ([]string, error) {
	names, err := c.store.DiscoverAll()
	if err != nil {
		return nil, err
	}
	return c.filter.FilterByName(names, c.nameFilter), nil
}

// runCase invokes the subject and compares its output. Subject failures
// are fatal and returned as err; a snapshot that could not be read fails
// the outcome and is returned as problem.
func (c *Controller) runCase(ctx context.Context, tc domain.TestCase) (outcome domain.RunOutcome, problem, err error) {
	actual, err := c.invoker.Invoke(ctx, tc.InputPath)
	if err != nil {
		return domain.RunOutcome{CaseName: tc.Name}, nil, err
	}

	outcome, problem = c.comparator.Compare(tc, actual)
	outcome.CaseName = tc.Name
	return outcome, problem, nil
}

func (c *Controller) regenerate(ctx context.Context, tc domain.TestCase) error {
	output, err := c.invoker.Invoke(ctx, tc.InputPath)
	if err != nil {
		return err
	}
	return c.writer.Write(tc, output)
}
