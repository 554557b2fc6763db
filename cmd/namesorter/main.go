// Command namesorter sorts a list of personal names by surname, then by
// each given name, and writes the result to a file.
//
// Usage:
//
//	namesorter [flags] <input-file>
//
// Each non-blank input line is one name: one to three given names followed
// by a surname. The sorted list goes to sorted-names-list.txt unless
// --output says otherwise. Any invalid line aborts the run with exit status 1
// and leaves the output file untouched.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/namesorter/internal/config"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command with args and returns the process exit status.
// Errors raised before the logger exists go straight to stderr; later ones
// have already been logged.
func run(args []string) int {
	cfg := config.DefaultConfig()
	cmd := newRootCmd(&cfg)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	}
	fmt.Fprintf(os.Stderr, "namesorter: %v\n", err)
	if errors.Is(err, config.ErrNeedInput) {
		fmt.Fprintf(os.Stderr, "Usage: %s\n", cmd.UseLine())
	}
	return 1
}
