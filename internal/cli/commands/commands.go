package commands

import (
	"io"

	"goldrun/internal/cli"
	"goldrun/internal/config"
	"goldrun/internal/ui"

	"github.com/spf13/cobra"
)

// Modes recognised as the first argument; anything else is a case name
const (
	ModeAll     = "all"
	ModeCompile = "compile"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies. Components that
// depend on the final configuration are built when a command executes.
func NewCommands(cfg *config.Config, stdout, stderr io.Writer) *Commands {
	viewer := ui.NewFailureViewer()
	list := NewListCommand(cfg, stdout)

	return &Commands{
		Run:  NewRunCommand(cfg, stdout, stderr, viewer, list),
		List: list,
	}
}

// Register wires the commands into the root command
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	rootCmd.Flags().StringVarP(&flags.BaseDir, "dir", "d", "", "Base directory that relative paths are resolved against (default \".\")")
	rootCmd.Flags().StringVar(&flags.CasesDir, "cases", "", "Directory holding case inputs and snapshots (default \""+config.DefaultCasesDir+"\")")
	rootCmd.Flags().StringVarP(&flags.InputExt, "ext", "e", "", "Extension of case input files (default \""+config.DefaultInputExt+"\")")
	rootCmd.Flags().StringVarP(&flags.Subject, "subject", "s", "", "Subject program invoked as '<subject> <input-file>'")
	rootCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only run or compile cases matching this name pattern (supports wildcards, e.g. 'vector*')")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr during batch runs")
	rootCmd.Flags().BoolVarP(&flags.Inspect, "inspect", "i", false, "Open an interactive viewer of failed cases when the run finishes")
	rootCmd.Flags().BoolVarP(&flags.List, "list", "l", false, "List discovered cases instead of running them")
}

// NewRootCommand creates the fully wired root command
func NewRootCommand(version string, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goldrun [all|compile|test_name]",
		Short: "Golden-file regression test harness",
		Long: `Runs a subject program once per test case and compares its standard output
with the recorded snapshot (<name>.expected.txt) next to the case input.

  all        run every case and print passed/failed counts
  compile    regenerate every snapshot from the subject's current output
  test_name  run a single case`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Create initial config with defaults
	cfg := config.New()
	var flags cli.Flags

	cmds := NewCommands(cfg, stdout, stderr)
	cmds.Register(rootCmd, &flags, cfg)
	return rootCmd
}
