package commands

import (
	"errors"
	"io"
	"os"

	"goldrun/internal/cli"
	"goldrun/internal/config"
	"goldrun/internal/discovery"
	"goldrun/internal/domain"
	"goldrun/internal/execution"
	"goldrun/internal/snapshot"
	"goldrun/internal/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RunCommand dispatches the mode argument to the run controller
type RunCommand struct {
	config *config.Config
	stdout io.Writer
	stderr io.Writer
	viewer *ui.FailureViewer
	list   *ListCommand
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, stdout, stderr io.Writer, viewer *ui.FailureViewer, list *ListCommand) *RunCommand {
	return &RunCommand{
		config: cfg,
		stdout: stdout,
		stderr: stderr,
		viewer: viewer,
		list:   list,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.Flags.List {
		return rc.list.Execute()
	}

	reporter := ui.NewReporter(rc.stdout)
	if len(args) == 0 {
		reporter.Usage(cmd.Root().Name(), rc.config.InputExt)
		return cli.ErrExitFailure
	}

	controller := rc.newController(reporter)
	ctx := cmd.Context()

	switch mode := args[0]; mode {
	case ModeAll:
		_, outcomes, err := controller.RunAll(ctx)
		if err != nil {
			return err
		}
		return rc.inspect(outcomes)

	case ModeCompile:
		_, err := controller.RegenerateAll(ctx)
		return err

	default:
		outcome, err := controller.RunOne(ctx, mode)
		if errors.Is(err, domain.ErrCaseNotFound) {
			return cli.ErrExitFailure
		}
		if err != nil {
			return err
		}
		return rc.inspect([]domain.RunOutcome{outcome})
	}
}

func (rc *RunCommand) newController(reporter *ui.Reporter) *execution.Controller {
	store := discovery.NewStore(rc.config.CasesPath(), rc.config.InputExt)
	runner := execution.NewRunner(rc.config.SubjectCommand(), rc.stderr)

	controller := execution.NewController(store, runner, snapshot.NewComparator(), snapshot.NewWriter(), reporter)
	controller.SetNameFilter(rc.config.Flags.NameFilter)
	if rc.config.Flags.Progress {
		controller.SetProgress(rc.stderr)
	}
	return controller
}

// inspect opens the failure viewer when requested and stdout is a terminal
func (rc *RunCommand) inspect(outcomes []domain.RunOutcome) error {
	if !rc.config.Flags.Inspect || len(ui.FailedOutcomes(outcomes)) == 0 {
		return nil
	}
	f, ok := rc.stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return rc.viewer.View(outcomes)
}
