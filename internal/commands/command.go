// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tarefas/internal/config"
	"tarefas/internal/tasks"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsLogin returns true if the command requires a CLI session.
	// Commands like help, version, login, logout and ui return false.
	NeedsLogin() bool

	// NeedsStore returns true if the command reads or mutates tasks.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths).
	// store is nil if NeedsStore() returns false; otherwise it is loaded.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int
}

// Interactive is implemented by commands that take over the terminal.
// Their logs are written to the log file instead of stderr.
type Interactive interface {
	Interactive() bool
}
