// Package config holds runtime configuration: defaults, CLI flag binding,
// the optional YAML config file, and validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultOutputPath is where sorted names go when no --output is given.
const DefaultOutputPath = "sorted-names-list.txt"

// Sentinel errors returned by Validate, ValidatePaths and ApplyArgs.
var (
	ErrNeedInput       = errors.New("need exactly one input file path")
	ErrEmptyInputPath  = errors.New("input file path cannot be empty")
	ErrEmptyOutputPath = errors.New("output file path cannot be empty")
	ErrOutputIsInput   = errors.New("output file must not be the input file")
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by the config file (if any) and CLI flags, before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Paths. InputPath is the single positional argument.
	InputPath  string
	OutputPath string // Default: DefaultOutputPath.

	// Behavior flags.
	DryRun bool // Sort and print; do not write the output file.
	Print  bool // Also print sorted names to stdout after writing.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Optional YAML config file path.
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		ColorMode:  ColorAuto,
	}
}

// Validate checks the color mode and that the input path (and, unless this
// is a dry run, the output path) is non-blank. Paths are trimmed in place.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	c.InputPath = strings.TrimSpace(c.InputPath)
	c.OutputPath = strings.TrimSpace(c.OutputPath)
	if c.InputPath == "" {
		return ErrEmptyInputPath
	}
	if c.OutputPath == "" && !c.DryRun {
		return ErrEmptyOutputPath
	}
	return nil
}

// ValidatePaths ensures the resolved output path is not the resolved input
// path, so a run never overwrites the list it is reading. Both arguments
// must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	if filepath.Clean(inputAbs) == filepath.Clean(outputAbs) {
		return ErrOutputIsInput
	}
	return nil
}
