package cli_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tarefas/internal/auth"
	"tarefas/internal/cli"
	"tarefas/internal/commands"
	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/tasks"
	"tarefas/internal/testutil"
)

// testFactory creates a store factory over the given FakeStorage.
func testFactory(st *testutil.FakeStorage) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config) (*tasks.Store, error) {
		store := tasks.New(st)
		store.Load(ctx)
		return store, nil
	}
}

// loggedInDir returns a config dir holding a valid session.
func loggedInDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := auth.Login(&config.Config{Dir: dir}, auth.Username, auth.Password, time.Now()); err != nil {
		t.Fatalf("login: %v", err)
	}
	return dir
}

func run(t *testing.T, factory cli.StoreFactory, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code = dispatcher.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := run(t, testFactory(testutil.NewFakeStorage()), "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := run(t, testFactory(testutil.NewFakeStorage()), "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	stdout, stderr, code := run(t, nil, "help", "--config", t.TempDir())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !bytes.Contains([]byte(stdout), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, stderr, code := run(t, nil, "version", "--config", t.TempDir())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "tarefas 0.1.0\n" {
		t.Errorf("expected 'tarefas 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := run(t, nil, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	_, stderr, code := run(t, nil, "help", "--config")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_InvalidConfig(t *testing.T) {
	t.Setenv("TAREFAS_STORAGE_BACKEND", "redis")

	_, stderr, code := run(t, nil, "version", "--config", t.TempDir())

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown storage backend: redis\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NotLoggedIn(t *testing.T) {
	st := testutil.NewFakeStorage()
	_, stderr, code := run(t, testFactory(st), "add", "--config", t.TempDir(), "Buy milk")

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: not logged in (run: tarefas login)\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
	if len(st.Calls()) != 0 {
		t.Errorf("storage should not be touched, got %v", st.Calls())
	}
}

func TestDispatcher_DefaultsToList(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	cfg := &config.Config{Dir: filepath.Join(xdg, config.AppName)}
	if err := auth.Login(cfg, auth.Username, auth.Password, time.Now()); err != nil {
		t.Fatalf("login: %v", err)
	}
	st := testutil.NewFakeStorage()
	st.Put(tasks.DefaultKey, `[{"id":"1","text":"Buy milk"}]`)

	stdout, stderr, code := run(t, testFactory(st))

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if !bytes.Contains([]byte(stdout), []byte("   1  Buy milk\n")) {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestDispatcher_AddThenList(t *testing.T) {
	dir := loggedInDir(t)
	st := testutil.NewFakeStorage()
	factory := testFactory(st)

	stdout, stderr, code := run(t, factory, "add", "--config", dir, "Buy", "milk")
	if code != exitcode.Success || stdout != "ok\n" {
		t.Fatalf("add: code %d, stdout %q, stderr %q", code, stdout, stderr)
	}
	if !st.Closed() {
		t.Error("expected the store to be closed after the command")
	}

	stdout, _, code = run(t, factory, "ls", "--config", dir)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !bytes.Contains([]byte(stdout), []byte("   1  Buy milk\n")) {
		t.Errorf("unexpected list output: %q", stdout)
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	dir := loggedInDir(t)

	stdout, _, code := run(t, testFactory(testutil.NewFakeStorage()), "add", "--config", dir, "--quiet", "Buy milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no output in quiet mode, got %q", stdout)
	}
}

func TestDispatcher_StorageOpenFailure(t *testing.T) {
	dir := loggedInDir(t)
	factory := func(ctx context.Context, cfg *config.Config) (*tasks.Store, error) {
		return nil, errors.New("disk on fire")
	}

	_, stderr, code := run(t, factory, "list", "--config", dir)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	expected := "error: storage error: disk on fire\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoFactory(t *testing.T) {
	dir := loggedInDir(t)

	_, _, code := run(t, nil, "list", "--config", dir)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
}

func TestDispatcher_LoginFlagsAndLogout(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, code := run(t, nil, "login", "--config", dir, "-u", "admin", "-p", "1234")
	if code != exitcode.Success || stdout != "ok\n" {
		t.Fatalf("login: code %d, stdout %q, stderr %q", code, stdout, stderr)
	}

	stdout, _, code = run(t, nil, "logout", "--config", dir)
	if code != exitcode.Success || stdout != "ok\n" {
		t.Fatalf("logout: code %d, stdout %q", code, stdout)
	}

	_, _, code = run(t, testFactory(testutil.NewFakeStorage()), "list", "--config", dir)
	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d after logout, got %d", exitcode.AuthError, code)
	}
}

func TestDispatcher_RmAlias(t *testing.T) {
	dir := loggedInDir(t)
	st := testutil.NewFakeStorage()
	st.Put(tasks.DefaultKey, `[{"id":"1","text":"Buy milk"},{"id":"2","text":"Walk dog"}]`)

	_, stderr, code := run(t, testFactory(st), "del", "--config", dir, "1")
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}

	raw, _ := st.Value(tasks.DefaultKey)
	if raw != `[{"id":"2","text":"Walk dog"}]` {
		t.Errorf("unexpected stored record: %s", raw)
	}
}
