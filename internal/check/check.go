// Package check runs the pre-pipeline preflight: the input must be an
// existing regular file, and the output must be a writable location that is
// not the input itself.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/namesorter/internal/config"
)

// Sentinel errors returned by Paths. Each is wrapped with the offending path.
var (
	ErrInputNotFound    = errors.New("input file not found")
	ErrInputIsDir       = errors.New("input path is a directory")
	ErrOutputIsDir      = errors.New("output path is a directory")
	ErrOutputDirMissing = errors.New("output directory does not exist")
)

// Paths validates cfg.InputPath and, unless this is a dry run,
// cfg.OutputPath. The output file itself need not exist yet, but its
// directory must.
func Paths(cfg *config.Config) error {
	fi, err := os.Stat(cfg.InputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, cfg.InputPath)
		}
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputIsDir, cfg.InputPath)
	}
	if cfg.DryRun {
		return nil
	}

	if fi, err := os.Stat(cfg.OutputPath); err == nil && fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputIsDir, cfg.OutputPath)
	}
	dir := filepath.Dir(cfg.OutputPath)
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, dir)
	}

	inputAbs, err := absPath(cfg.InputPath)
	if err != nil {
		return err
	}
	outputAbs, err := absPath(cfg.OutputPath)
	if err != nil {
		return err
	}
	return cfg.ValidatePaths(inputAbs, outputAbs)
}

// absPath returns the absolute, symlink-resolved path. The final element may
// not exist yet; in that case only its directory is resolved.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}
