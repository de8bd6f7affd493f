package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"tarefas/internal/auth"
	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/tasks"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	user     string
	password string

	// in supplies missing credentials. Defaults to os.Stdin.
	in io.Reader
}

// SetInput sets the reader used to prompt for missing credentials (for testing).
func (c *LoginCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Start a CLI session" }
func (c *LoginCmd) Usage() string {
	return "tarefas login [common flags] [--user <name>] [--password <password>]"
}
func (c *LoginCmd) NeedsLogin() bool { return false }
func (c *LoginCmd) NeedsStore() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.user, "user", "", "")
	fs.StringVar(&c.user, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, store *tasks.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if auth.LoggedIn(cfg) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	in := c.in
	if in == nil {
		in = os.Stdin
	}
	reader := bufio.NewReader(in)

	user := c.user
	if user == "" {
		user = prompt(reader, errOut, "username: ")
	}
	password := c.password
	if password == "" {
		password = prompt(reader, errOut, "password: ")
	}

	if err := auth.Login(cfg, user, password, time.Now()); err != nil {
		if err == auth.ErrInvalidCredentials {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// prompt writes label to w and reads one line. The prompt goes to stderr so
// stdout stays clean for scripts.
func prompt(r *bufio.Reader, w io.Writer, label string) string {
	fmt.Fprint(w, label)
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
