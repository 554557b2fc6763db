package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML config file schema. Pointer fields distinguish
// "absent" from zero values.
type fileConfig struct {
	Output  *string `yaml:"output"`
	Print   *bool   `yaml:"print"`
	Verbose *bool   `yaml:"verbose"`
	Color   *string `yaml:"color"`
	Log     *string `yaml:"log"`
}

// LoadFile reads the YAML config file at path and applies its settings to
// cfg. Settings whose flag was set explicitly on fs are left alone, so the
// command line always wins over the file. fs may be nil.
func LoadFile(path string, cfg *Config, fs *pflag.FlagSet) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	changed := func(name string) bool { return fs != nil && fs.Changed(name) }

	if fc.Output != nil && !changed("output") {
		cfg.OutputPath = *fc.Output
	}
	if fc.Print != nil && !changed("print") {
		cfg.Print = *fc.Print
	}
	if fc.Verbose != nil && !changed("verbose") {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Log != nil && !changed("log") {
		cfg.LogFile = *fc.Log
	}
	if fc.Color != nil && !changed("color-mode") && !changed("color") && !changed("no-color") {
		if err := (&colorModeValue{&cfg.ColorMode}).Set(*fc.Color); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return nil
}
