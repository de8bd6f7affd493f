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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tarefas help" }
func (c *HelpCmd) NeedsLogin() bool  { return false }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tarefas                                  List all tasks
  tarefas list [common flags]              List all tasks
  tarefas add [common flags] <text...>     Create a task
  tarefas edit [common flags] <n> <text...>
  tarefas rm [common flags] <n...>         Delete tasks (aliases: delete, del)
  tarefas clear [common flags]             Delete all tasks (alias: clearall)
  tarefas login [common flags] [--user <name>] [--password <password>]
  tarefas logout [common flags]
  tarefas ui [common flags]                Open the terminal UI
  tarefas help
  tarefas version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TAREFAS_STORAGE_BACKEND   sqlite (default) or file
  TAREFAS_STORAGE_TIMEOUT   per-call storage timeout, e.g. 2s
  TAREFAS_LOG_LEVEL         debug, info, warn (default) or error
  TAREFAS_DEBUG             same as --debug
`
