package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/okkostudio/wren2c/internal/encoder"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is the configuration file looked up when --config is not given.
	DefaultPath = "wren2c.yaml"
	// DefaultInput is the script converted when nothing else is configured.
	DefaultInput = "game.wren"
	// OutputSuffix is appended to the input path to name the artifact.
	OutputSuffix = ".inc"
)

// Config represents the configuration parsed from wren2c.yaml.
// It names the script to convert, where the artifact goes, and how the
// literal is escaped.
type Config struct {
	// Input is the script to embed.
	Input string `yaml:"input"`
	// Output is the include file to write. Defaults to Input + ".inc".
	Output string `yaml:"output"`
	// Module overrides the identifier derived from the input file name.
	Module string `yaml:"module"`
	// EscapeBackslashes doubles backslashes in the script text.
	EscapeBackslashes bool `yaml:"escape_backslashes"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Input: DefaultInput}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads the configuration at path. A missing file is only an error
// when required is set; otherwise the defaults are returned.
//
// The returned configuration has defaults applied but is not validated,
// so callers can layer command line overrides on top first.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes YAML configuration. Relative paths in the file are
// resolved against the directory of source.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	dir := filepath.Dir(source)
	cfg.Input = resolve(dir, cfg.Input)
	cfg.Output = resolve(dir, cfg.Output)
	cfg.Logging.Path = resolve(dir, cfg.Logging.Path)

	if cfg.Input == "" {
		cfg.Input = resolve(dir, DefaultInput)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || dir == "." || dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Output == "" && config.Input != "" {
		config.Output = config.Input + OutputSuffix
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if config.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if filepath.Clean(config.Input) == filepath.Clean(config.Output) {
		return fmt.Errorf("output path %s would overwrite the input", config.Output)
	}

	if config.Module != "" && !encoder.IsIdentifier(config.Module) {
		return fmt.Errorf("module name '%s' is not a valid C identifier (letters, digits and underscores, not starting with a digit)", config.Module)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}
