package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/tasks"
	"tarefas/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd launches the terminal UI. The UI has its own login screen, so no CLI
// session is required.
type UICmd struct{}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return nil }
func (c *UICmd) Synopsis() string  { return "Open the terminal UI" }
func (c *UICmd) Usage() string     { return "tarefas ui [common flags]" }
func (c *UICmd) NeedsLogin() bool  { return false }
func (c *UICmd) NeedsStore() bool  { return true }
func (c *UICmd) Interactive() bool { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if err := ui.Run(ctx, store, store.Logger()); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
