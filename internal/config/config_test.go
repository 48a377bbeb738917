package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_CasesPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   &Config{BaseDir: ".", CasesDir: "cases"},
			expected: "cases",
		},
		{
			name:     "relative to base dir",
			config:   &Config{BaseDir: "/project/tests", CasesDir: "cases"},
			expected: "/project/tests/cases",
		},
		{
			name:     "absolute cases dir",
			config:   &Config{BaseDir: "/project", CasesDir: "/absolute/cases"},
			expected: "/absolute/cases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.CasesPath()
			if result != filepath.FromSlash(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_SubjectCommand(t *testing.T) {
	t.Run("bare name is left for PATH lookup", func(t *testing.T) {
		cfg := &Config{BaseDir: "/project", SubjectPath: "lalang"}
		if got := cfg.SubjectCommand(); got != "lalang" {
			t.Errorf("expected lalang, got %s", got)
		}
	})

	t.Run("relative path is resolved against base dir", func(t *testing.T) {
		base := t.TempDir()
		cfg := &Config{BaseDir: base, SubjectPath: "../bin/lalang"}
		expected := filepath.Join(filepath.Dir(base), "bin", "lalang")
		if got := cfg.SubjectCommand(); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})

	t.Run("absolute path is kept", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "lalang")
		cfg := &Config{BaseDir: "/project", SubjectPath: abs}
		if got := cfg.SubjectCommand(); got != abs {
			t.Errorf("expected %s, got %s", abs, got)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.BaseDir != DefaultBaseDir {
		t.Errorf("expected BaseDir %s, got %s", DefaultBaseDir, cfg.BaseDir)
	}
	if cfg.CasesDir != DefaultCasesDir {
		t.Errorf("expected CasesDir %s, got %s", DefaultCasesDir, cfg.CasesDir)
	}
	if cfg.InputExt != DefaultInputExt {
		t.Errorf("expected InputExt %s, got %s", DefaultInputExt, cfg.InputExt)
	}
	if cfg.SubjectPath == "" {
		t.Error("expected a default subject path")
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing project file keeps defaults", func(t *testing.T) {
		cfg, err := Load(Flags{BaseDir: t.TempDir()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.CasesDir != DefaultCasesDir || cfg.InputExt != DefaultInputExt {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("project file overrides defaults", func(t *testing.T) {
		base := t.TempDir()
		content := "SUBJECT=bin/lalang\nCASES_DIR=golden\nINPUT_EXT=.pd\n"
		if err := os.WriteFile(filepath.Join(base, ProjectFileName), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write project file: %v", err)
		}

		cfg, err := Load(Flags{BaseDir: base})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SubjectPath != "bin/lalang" {
			t.Errorf("expected subject bin/lalang, got %s", cfg.SubjectPath)
		}
		if cfg.CasesDir != "golden" {
			t.Errorf("expected cases dir golden, got %s", cfg.CasesDir)
		}
		if cfg.InputExt != "pd" {
			t.Errorf("expected extension pd, got %s", cfg.InputExt)
		}
	})

	t.Run("flags override project file", func(t *testing.T) {
		base := t.TempDir()
		if err := os.WriteFile(filepath.Join(base, ProjectFileName), []byte("INPUT_EXT=pd\n"), 0644); err != nil {
			t.Fatalf("failed to write project file: %v", err)
		}

		cfg, err := Load(Flags{BaseDir: base, InputExt: "la", Subject: "lalang"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputExt != "la" {
			t.Errorf("expected extension la, got %s", cfg.InputExt)
		}
		if cfg.SubjectPath != "lalang" {
			t.Errorf("expected subject lalang, got %s", cfg.SubjectPath)
		}
	})

	t.Run("environment is not consulted", func(t *testing.T) {
		t.Setenv(KeyInputExt, "env")
		cfg, err := Load(Flags{BaseDir: t.TempDir()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputExt != DefaultInputExt {
			t.Errorf("expected %s, got %s", DefaultInputExt, cfg.InputExt)
		}
	})
}
