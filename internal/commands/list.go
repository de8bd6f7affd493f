package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/output"
	"tarefas/internal/tasks"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. It is also the default command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "tarefas list [common flags]" }
func (c *ListCmd) NeedsLogin() bool  { return true }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	list := store.Tasks()
	if len(list) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatList(out, list)
	return exitcode.Success
}
