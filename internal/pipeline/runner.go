package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/namesorter/internal/config"
	"github.com/backmassage/namesorter/internal/display"
	"github.com/backmassage/namesorter/internal/naming"
	"github.com/backmassage/namesorter/internal/textfile"
)

// Source yields the non-blank, trimmed lines of a name list.
type Source interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}

// Sink persists an ordered list of lines.
type Sink interface {
	WriteLines(ctx context.Context, path string, lines []string) error
}

// Logger is the logging surface the pipeline needs. Defined here so tests
// can record log output without a real logger.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
	Debug(string, ...any)
}

// Runner wires a Source and Sink to the name sorter.
type Runner struct {
	Source Source
	Sink   Sink
	Log    Logger
	Out    io.Writer // Receives sorted names for --print and --dry-run.
}

// Run reads cfg.InputPath on the local filesystem, sorts it and writes
// cfg.OutputPath, printing to stdout as cfg asks.
func Run(ctx context.Context, cfg *config.Config, log Logger) (RunStats, error) {
	r := &Runner{Source: textfile.Store{}, Sink: textfile.Store{}, Log: log, Out: os.Stdout}
	return r.Run(ctx, cfg)
}

// Run executes one read → sort → write pass. On failure it logs
// "Error processing names: <err>" and returns err unchanged.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (RunStats, error) {
	stats, err := r.run(ctx, cfg)
	if err != nil {
		r.Log.Error("Error processing names: %v", err)
		return stats, err
	}
	return stats, nil
}

func (r *Runner) run(ctx context.Context, cfg *config.Config) (RunStats, error) {
	var stats RunStats
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return stats, err
	}

	// --- Read ---
	lines, err := r.Source.ReadLines(ctx, cfg.InputPath)
	if err != nil {
		return stats, err
	}
	stats.Read = len(lines)
	stats.InputBytes = fileSize(cfg.InputPath)
	r.Log.Debug("Read %s (%s) from %s",
		display.Plural(stats.Read, "name"), display.FormatBytes(stats.InputBytes), cfg.InputPath)

	// --- Sort ---
	sorted, err := naming.Sort(lines)
	if err != nil {
		return stats, err
	}
	dups := naming.Duplicates(sorted)
	stats.Duplicates = len(dups)
	for _, d := range dups {
		r.Log.Debug("Duplicate name: %s (%d times)", d.FullName, d.Count)
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	// --- Dry-run ---
	if cfg.DryRun {
		if err := r.print(sorted); err != nil {
			return stats, err
		}
		stats.Written = len(sorted)
		stats.Elapsed = time.Since(start)
		r.Log.Success("[DRY] Would write %s to %s", display.Plural(len(sorted), "name"), cfg.OutputPath)
		return stats, nil
	}

	// --- Write ---
	if err := r.Sink.WriteLines(ctx, cfg.OutputPath, sorted); err != nil {
		return stats, err
	}
	stats.Written = len(sorted)
	stats.OutputBytes = fileSize(cfg.OutputPath)

	if cfg.Print {
		if err := r.print(sorted); err != nil {
			return stats, err
		}
	}

	stats.Elapsed = time.Since(start)
	r.Log.Success("Successfully processed %d names. Sorted names written to: %s", stats.Read, cfg.OutputPath)
	r.Log.Debug("Wrote %s to %s in %s",
		display.FormatBytes(stats.OutputBytes), filepath.Base(cfg.OutputPath), stats.Elapsed.Round(time.Millisecond))
	return stats, nil
}

func (r *Runner) print(names []string) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(out, n); err != nil {
			return err
		}
	}
	return nil
}

// fileSize returns the size of path, or 0 if it cannot be read.
func fileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}
