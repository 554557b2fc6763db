package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/namesorter/internal/check"
	"github.com/backmassage/namesorter/internal/config"
	"github.com/backmassage/namesorter/internal/display"
	"github.com/backmassage/namesorter/internal/logging"
	"github.com/backmassage/namesorter/internal/pipeline"
)

// errReported marks a failure that has already been written to the log.
var errReported = errors.New("error already reported")

func newRootCmd(cfg *config.Config) *cobra.Command {
	var overrides *config.Overrides

	cmd := &cobra.Command{
		Use:   "namesorter [flags] <input-file>",
		Short: "Sort a list of names by surname, then by given names",
		Long: `namesorter reads one name per line (one to three given names followed by
a surname), sorts the list by surname and then by each given name in order,
and writes the sorted names to a file. Comparison is ordinal and case
sensitive.`,
		Example: `  namesorter ./unsorted-names-list.txt
  namesorter -o sorted.txt --print ./unsorted-names-list.txt
  namesorter --dry-run ./unsorted-names-list.txt`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			return config.ApplyArgs(cfg, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.ConfigFile != "" {
				if err := config.LoadFile(cfg.ConfigFile, cfg, cmd.Flags()); err != nil {
					return err
				}
			}
			overrides.Apply(cfg)
			return execute(cmd.Context(), cfg)
		},
	}

	overrides = config.RegisterFlags(cmd.Flags(), cfg)
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")
	cmd.SetVersionTemplate("namesorter v{{.Version}} (" + commit + ")\n")
	return cmd
}

// execute runs one sort: validate → logger → preflight → pipeline.
func execute(ctx context.Context, cfg *config.Config) error {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors are
	// returned to run for printing.
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	if cfg.Verbose {
		display.PrintBanner(os.Stdout)
	}
	log.Debug("=== namesorter v%s (%s) ===", version, commit)
	log.Debug("In:  %s", cfg.InputPath)
	log.Debug("Out: %s", cfg.OutputPath)
	if cfg.DryRun {
		log.Warn("DRY RUN: the output file will not be written")
	}

	if err := check.Paths(cfg); err != nil {
		log.Error("%v", err)
		return errReported
	}

	// Phase 3: Signal handling. Cancel on SIGINT/SIGTERM; the atomic write
	// means an interrupted run never leaves a partial output file.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, aborting")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: read → sort → write.
	if _, err := pipeline.Run(ctx, cfg, log); err != nil {
		return errReported
	}
	return nil
}
