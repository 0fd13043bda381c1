// Package cli implements the burrow command-line interface.
//
// # Commands
//
//   - solve: parse a diagram (or load a TOML layout) and print the least cost
//   - show:  parse a diagram and draw it back
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on the solver's progress lines. Loggers travel through
// context.Context so every command sees the same one.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "burrow"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version. main
// calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI that prints results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Burrow finds the cheapest way to sort amphipods into their rooms",
		Long:         `Burrow reads a burrow diagram, searches every legal sequence of moves in order of increasing cost, and reports the least total energy needed to put each amphipod into its own room.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.SetOut(c.out)

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.showCommand())

	return root
}
