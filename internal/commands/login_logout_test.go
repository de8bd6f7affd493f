package commands_test

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"strings"
	"testing"

	"tarefas/internal/auth"
	"tarefas/internal/commands"
	"tarefas/internal/config"
	"tarefas/internal/exitcode"
)

func newFlagSet(cmd commands.Command) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	return fs
}

func runLogin(t *testing.T, cfg *config.Config, user, password, stdin string) (stdout, stderr string, code int) {
	t.Helper()

	cmd := &commands.LoginCmd{}
	fs := newFlagSet(cmd)
	var args []string
	if user != "" {
		args = append(args, "--user", user)
	}
	if password != "" {
		args = append(args, "--password", password)
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cmd.SetInput(strings.NewReader(stdin))

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), cfg, nil, fs.Args(), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// TestLoginCommand_Flags verifies a session is written for good credentials
func TestLoginCommand_Flags(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	stdout, stderr, code := runLogin(t, cfg, "admin", "1234", "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}
	if !auth.LoggedIn(cfg) {
		t.Error("expected a session after login")
	}
}

// TestLoginCommand_Prompt verifies missing credentials are read from input
func TestLoginCommand_Prompt(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	stdout, stderr, code := runLogin(t, cfg, "", "", "admin\n1234\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout)
	}
	if stderr != "username: password: " {
		t.Errorf("expected prompts on stderr, got %q", stderr)
	}
}

// TestLoginCommand_WrongPassword verifies bad credentials are an auth error
func TestLoginCommand_WrongPassword(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	stdout, stderr, code := runLogin(t, cfg, "admin", "0000", "")

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: invalid username or password\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
	if cfg.HasSession() {
		t.Error("no session should be written")
	}
}

// TestLoginCommand_AlreadyLoggedIn verifies login is idempotent
func TestLoginCommand_AlreadyLoggedIn(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	runLogin(t, cfg, "admin", "1234", "")

	stdout, _, code := runLogin(t, cfg, "", "", "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "already logged in\n" {
		t.Errorf("expected 'already logged in', got %q", stdout)
	}
}

// TestLogoutCommand_NotLoggedIn verifies logout without a session
func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	var outBuf, errBuf bytes.Buffer
	code := (&commands.LogoutCmd{}).Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "not logged in\n" {
		t.Errorf("expected 'not logged in', got %q", outBuf.String())
	}
}

// TestLogoutCommand_RemovesSession verifies the session file is deleted
func TestLogoutCommand_RemovesSession(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	runLogin(t, cfg, "admin", "1234", "")

	var outBuf, errBuf bytes.Buffer
	code := (&commands.LogoutCmd{}).Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "ok\n" {
		t.Errorf("expected 'ok', got %q", outBuf.String())
	}
	if _, err := os.Stat(cfg.SessionPath()); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}
}

// TestLogoutCommand_Quiet verifies quiet mode suppresses output
func TestLogoutCommand_Quiet(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir(), Quiet: true}

	var outBuf, errBuf bytes.Buffer
	(&commands.LogoutCmd{}).Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if outBuf.String() != "" {
		t.Errorf("expected no output in quiet mode, got %q", outBuf.String())
	}
}
