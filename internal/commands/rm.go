package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/tasks"
)

func init() {
	Register(&RmCmd{})
	Register(&ClearCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete", "del"} }
func (c *RmCmd) Synopsis() string  { return "Delete tasks" }
func (c *RmCmd) Usage() string     { return "tarefas rm [common flags] <n...>" }
func (c *RmCmd) NeedsLogin() bool  { return true }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	nums, err := ParseTaskRefs(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Resolve everything first; nothing is removed if any reference is bad.
	resolved, err := resolveTasks(store.Tasks(), nums)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	for _, t := range resolved {
		store.Remove(t.ID)
	}
	return finish(ctx, cfg, store, out, errOut)
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return []string{"clearall"} }
func (c *ClearCmd) Synopsis() string  { return "Delete all tasks" }
func (c *ClearCmd) Usage() string     { return "tarefas clear [common flags]" }
func (c *ClearCmd) NeedsLogin() bool  { return true }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	store.ClearAll()
	return finish(ctx, cfg, store, out, errOut)
}
