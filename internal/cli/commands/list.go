package commands

import (
	"io"

	"goldrun/internal/config"
	"goldrun/internal/discovery"
	"goldrun/internal/ui"
)

// ListCommand prints the discovered cases
type ListCommand struct {
	config *config.Config
	out    io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, out io.Writer) *ListCommand {
	return &ListCommand{
		config: cfg,
		out:    out,
	}
}

// Execute lists the cases matching the name filter
func (lc *ListCommand) Execute() error {
	store := discovery.NewStore(lc.config.CasesPath(), lc.config.InputExt)
	names, err := store.DiscoverAll()
	if err != nil {
		return err
	}

	names = discovery.NewFilter().FilterByName(names, lc.config.Flags.NameFilter)
	ui.NewFormatter(lc.out, store).PrintCaseList(store.Dir(), names)
	return nil
}
