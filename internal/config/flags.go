package config

// This file binds CLI flags to Config. Negated flags (--no-color) are
// collected separately and applied after parsing so Config defaults hold
// unless the user passes the flag.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Overrides holds flag values that are applied to Config after parsing
// rather than bound directly.
type Overrides struct {
	forceColor bool
	noColor    bool
}

// RegisterFlags defines every namesorter flag on fs, bound to cfg. Call
// [Overrides.Apply] on the result once fs has been parsed.
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) *Overrides {
	o := &Overrides{}

	fs.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "Output file for the sorted names")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", cfg.DryRun, "Print sorted names; do not write the output file")
	fs.BoolVarP(&cfg.Print, "print", "p", cfg.Print, "Also print sorted names to stdout")

	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color-mode", "Colored logs: auto | always | never")
	fs.BoolVar(&o.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "YAML config file with default settings")

	return o
}

// Apply copies the negated and shorthand color flags into cfg. --no-color
// wins over --color.
func (o *Overrides) Apply(cfg *Config) {
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// ApplyArgs sets InputPath from the positional arguments.
func ApplyArgs(cfg *Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w (got %d arguments)", ErrNeedInput, len(args))
	}
	cfg.InputPath = args[0]
	return nil
}

// colorModeValue adapts ColorMode to pflag.Value.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
