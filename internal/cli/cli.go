// Package cli implements the lineorder command-line interface.
//
// The CLI exposes a single "optimize" subcommand: it loads a JSON
// test-network file and an optional TOML config, runs the core Optimize
// entry point, and prints the resulting ordering.
//
// All commands support --verbose (-v) for debug-level logging. The root
// command's PersistentPreRunE attaches the CLI's logger to each command's
// context so subcommands retrieve it with loggerFromContext rather than
// reaching into CLI directly.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lineorder/pkg/observability"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger, and registers a
// logging implementation of observability.OptimizeHooks so build/solve/
// decode phase timings are reported the same way command progress is.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	observability.SetOptimizeHooks(loggingOptimizeHooks{logger: c.Logger})
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lineorder",
		Short:        "lineorder computes crossing-minimizing line orderings for transit maps",
		Long:         `lineorder builds an integer linear program over a transit network's shared edges and solves it to minimize visual line crossings.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("lineorder %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.optimizeCommand())

	return root
}
