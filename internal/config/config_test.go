package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "valid",
			cfg:  Config{Input: "game.wren", Output: "game.wren.inc", Logging: LoggingConfig{Level: "debug"}},
		},
		{
			name: "valid module override",
			cfg:  Config{Input: "game-logic.wren", Output: "out.inc", Module: "gameLogic"},
		},
		{
			name:      "missing input",
			cfg:       Config{Output: "game.wren.inc"},
			wantError: "input path is required",
		},
		{
			name:      "missing output",
			cfg:       Config{Input: "game.wren"},
			wantError: "output path is required",
		},
		{
			name:      "output overwrites input",
			cfg:       Config{Input: "scripts/game.wren", Output: "scripts/../scripts/game.wren"},
			wantError: "would overwrite the input",
		},
		{
			name:      "module with hyphen",
			cfg:       Config{Input: "game.wren", Output: "game.wren.inc", Module: "game-logic"},
			wantError: "not a valid C identifier",
		},
		{
			name:      "module starting with digit",
			cfg:       Config{Input: "game.wren", Output: "game.wren.inc", Module: "2game"},
			wantError: "not a valid C identifier",
		},
		{
			name:      "bad logging level",
			cfg:       Config{Input: "game.wren", Output: "game.wren.inc", Logging: LoggingConfig{Level: "verbose"}},
			wantError: "invalid logging level",
		},
		{
			name: "logging level is case insensitive",
			cfg:  Config{Input: "game.wren", Output: "game.wren.inc", Logging: LoggingConfig{Level: "WARN"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Input: "scripts/game.wren"}
	ApplyDefaults(cfg)

	if cfg.Output != "scripts/game.wren.inc" {
		t.Errorf("Output = %q, want %q", cfg.Output, "scripts/game.wren.inc")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}

	cfg = &Config{Input: "a.wren", Output: "b.inc", Logging: LoggingConfig{Level: "error"}}
	ApplyDefaults(cfg)
	if cfg.Output != "b.inc" || cfg.Logging.Level != "error" {
		t.Errorf("ApplyDefaults overwrote explicit values: %+v", cfg)
	}
}

func TestDefault(t *testing.T) {
	want := &Config{
		Input:   "game.wren",
		Output:  "game.wren.inc",
		Logging: LoggingConfig{Level: "info"},
	}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wren2c.yaml")
	content := `input: scripts/game.wren
module: core
escape_backslashes: true
logging:
  level: debug
  path: logs/wren2c.log
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := &Config{
		Input:             filepath.Join(dir, "scripts", "game.wren"),
		Output:            filepath.Join(dir, "scripts", "game.wren.inc"),
		Module:            "core",
		EscapeBackslashes: true,
		Logging: LoggingConfig{
			Level: "debug",
			Path:  filepath.Join(dir, "logs", "wren2c.log"),
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wren2c.yaml")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("optional Load failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("optional Load mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(path, true); err == nil {
		t.Error("required Load of a missing file should fail")
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("input: [unterminated"), "wren2c.yaml")
	if err == nil || !strings.Contains(err.Error(), "failed to parse wren2c.yaml") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestParse_AbsolutePathsKept(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "game.wren")
	cfg, err := Parse([]byte("input: "+abs+"\n"), filepath.Join("conf", "wren2c.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input != abs {
		t.Errorf("Input = %q, want %q", cfg.Input, abs)
	}
}
