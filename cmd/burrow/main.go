// Command burrow prints the least energy needed to sort the amphipods of a
// burrow diagram into their rooms.
//
// Exit status is 0 when the search ran (found or not), 1 on bad input and
// 130 when interrupted, which also stops a long search mid-way.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burrow/internal/cli"
)

// Set at release time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // search interrupted
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the -v flag into the root command: it raises the shared
// logger to debug before solve or show starts, so solver progress shows.
func run(ctx context.Context) error {
	var verbose bool

	cli.SetVersion(version, commit, date)
	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress")

	attachLogger := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return attachLogger(cmd, args)
	}

	return root.ExecuteContext(ctx)
}
