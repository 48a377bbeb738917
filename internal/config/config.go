package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness
type Config struct {
	// Layout settings
	BaseDir  string
	CasesDir string
	InputExt string

	// Subject program
	SubjectPath string

	// Command flags
	Flags Flags
}

// Flags holds command-line overrides and switches
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

// New creates a new Config with defaults
func New() *Config {
	subject := DefaultSubjectPath
	if runtime.GOOS == "windows" {
		subject += ".exe"
	}
	return &Config{
		BaseDir:     DefaultBaseDir,
		CasesDir:    DefaultCasesDir,
		InputExt:    DefaultInputExt,
		SubjectPath: subject,
	}
}

// Load creates a config from defaults, the project file in the base
// directory, and finally the given flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if flags.BaseDir != "" {
		cfg.BaseDir = flags.BaseDir
	}

	if err := cfg.LoadFile(filepath.Join(cfg.BaseDir, ProjectFileName)); err != nil {
		return nil, err
	}

	cfg.ApplyFlags(flags)
	return cfg, nil
}

// LoadFile applies settings from a dotenv-format project file. The process
// environment is left untouched. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	if v := values[KeySubject]; v != "" {
		c.SubjectPath = v
	}
	if v := values[KeyCasesDir]; v != "" {
		c.CasesDir = v
	}
	if v := values[KeyInputExt]; v != "" {
		c.InputExt = strings.TrimPrefix(v, ".")
	}
	return nil
}

// ApplyFlags overrides settings with non-empty flag values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.CasesDir != "" {
		c.CasesDir = flags.CasesDir
	}
	if flags.InputExt != "" {
		c.InputExt = strings.TrimPrefix(flags.InputExt, ".")
	}
	if flags.Subject != "" {
		c.SubjectPath = flags.Subject
	}
}

// CasesPath returns the case directory, relative to the base directory unless absolute
func (c *Config) CasesPath() string {
	if filepath.IsAbs(c.CasesDir) {
		return c.CasesDir
	}
	return filepath.Join(c.BaseDir, c.CasesDir)
}

// SubjectCommand returns the path used to launch the subject program.
// Bare command names are left for PATH lookup; relative paths are
// resolved against the base directory.
func (c *Config) SubjectCommand() string {
	p := c.SubjectPath
	if filepath.IsAbs(p) || !strings.ContainsAny(p, `/\`) {
		return p
	}
	joined := filepath.Join(c.BaseDir, p)
	if abs, err := filepath.Abs(joined); err == nil {
		return abs
	}
	return joined
}
