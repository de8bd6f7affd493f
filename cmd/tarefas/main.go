// Package main is the entry point for the tarefas CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tarefas/internal/backend"
	"tarefas/internal/cli"
	"tarefas/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, backend.NewStore)
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
