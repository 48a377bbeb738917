package cli

import "goldrun/internal/config"

// Flags holds command-line flags
type Flags struct {
	BaseDir    string
	CasesDir   string
	InputExt   string
	Subject    string
	NameFilter string
	Progress   bool
	Inspect    bool
	List       bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BaseDir:    f.BaseDir,
		CasesDir:   f.CasesDir,
		InputExt:   f.InputExt,
		Subject:    f.Subject,
		NameFilter: f.NameFilter,
		Progress:   f.Progress,
		Inspect:    f.Inspect,
		List:       f.List,
	}
}
