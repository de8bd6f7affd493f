package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/tasks"
)

func init() {
	Register(&AddCmd{})
	Register(&EditCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "tarefas add [common flags] <text...>" }
func (c *AddCmd) NeedsLogin() bool  { return true }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	store.Add(text)
	return finish(ctx, cfg, store, out, errOut)
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace the text of a task" }
func (c *EditCmd) Usage() string     { return "tarefas edit [common flags] <n> <text...>" }
func (c *EditCmd) NeedsLogin() bool  { return true }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}

	num, err := ParseTaskRef(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	text := strings.Join(args[1:], " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	resolved, err := resolveTasks(store.Tasks(), []int{num})
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := store.BeginEdit(resolved[0].ID); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	store.Add(text)
	return finish(ctx, cfg, store, out, errOut)
}

// finish waits for the mutation to reach storage before reporting success.
// Storage failures are logged by the store and do not change the exit code.
func finish(ctx context.Context, cfg *config.Config, store *tasks.Store, out, errOut io.Writer) int {
	if err := store.Flush(ctx); err != nil {
		fmt.Fprintln(errOut, "error: cancelled")
		return exitcode.UserError
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
