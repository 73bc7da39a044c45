package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/traykeep/traykeep/cmd/common"
	"github.com/traykeep/traykeep/internal/proctable"
	"github.com/traykeep/traykeep/internal/startup"
	"github.com/traykeep/traykeep/internal/supervisor"
)

// captureOutput captures stdout and stderr during function execution.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	var bufOut, bufErr bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { io.Copy(&bufOut, rOut); wg.Done() }()
	go func() { io.Copy(&bufErr, rErr); wg.Done() }()

	f()

	wOut.Close()
	wErr.Close()
	wg.Wait()
	os.Stdout = oldStdout
	os.Stderr = oldStderr
	rOut.Close()
	rErr.Close()

	return bufOut.String(), bufErr.String()
}

// assertContains checks if output contains the expected substring.
func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

// assertNotContains checks if output does NOT contain the specified substring.
func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to NOT contain %q, got:\n%s", notExpected, output)
	}
}

// assertErrorFormat checks that error output follows the standard format:
// traykeep: cmd[action]: msg
func assertErrorFormat(t *testing.T, output, cmd, action string) {
	t.Helper()
	pattern := "traykeep: " + cmd + "[" + action + "]:"
	if !strings.Contains(output, pattern) {
		t.Errorf("expected error format %q, got:\n%s", pattern, output)
	}
}

// assertExitCode checks that err carries the given exit status.
func assertExitCode(t *testing.T, err error, want int) {
	t.Helper()
	var ec cli.ExitCoder
	if !errors.As(err, &ec) {
		t.Fatalf("expected exit error with code %d, got %v", want, err)
	}
	if ec.ExitCode() != want {
		t.Fatalf("exit code = %d, want %d", ec.ExitCode(), want)
	}
}

func newTestApp() *cli.App {
	app := cli.NewApp()
	app.Name = "traykeep"
	app.HelpName = "traykeep"
	app.Version = "test"
	return app
}

// newContext creates a CLI context for testing commands. The flags are
// registered on the flag set before args are parsed, so environment
// fallbacks apply.
func newContext(app *cli.App, args []string, name string, flags []cli.Flag) *cli.Context {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, f := range flags {
		f.Apply(set)
	}
	_ = set.Parse(args)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: name, Flags: flags}
	return ctx
}

type fakeTable struct {
	mu           sync.Mutex
	procs        []proctable.Process
	listErr      error
	terminateErr map[int32]error
	terminated   []int32
	alive        func(pid int32) bool
}

func (f *fakeTable) List(context.Context) ([]proctable.Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]proctable.Process(nil), f.procs...), nil
}

func (f *fakeTable) Terminate(_ context.Context, pid int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = append(f.terminated, pid)
	return f.terminateErr[pid]
}

func (f *fakeTable) Alive(_ context.Context, pid int32) bool {
	if f.alive == nil {
		return false
	}
	return f.alive(pid)
}

type fakeSpawner struct {
	calls []supervisor.Command
	err   error
}

func (f *fakeSpawner) Spawn(c supervisor.Command) (int, error) {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return 0, f.err
	}
	return 9000 + len(f.calls), nil
}

type fakeWriter struct {
	fs     afero.Fs
	writes []startup.Shortcut
	err    error
}

func (f *fakeWriter) Write(path string, s startup.Shortcut) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, s)
	return afero.WriteFile(f.fs, path, []byte(s.Target), 0o644)
}

type stubs struct {
	table     *fakeTable
	spawner   *fakeSpawner
	writer    *fakeWriter
	fs        afero.Fs
	folder    string
	folderErr error
	scriptDir string
}

// stubDeps replaces the system-facing constructors for the duration of t.
func stubDeps(t *testing.T) *stubs {
	t.Helper()
	fs := afero.NewMemMapFs()
	s := &stubs{
		table:     &fakeTable{},
		spawner:   &fakeSpawner{},
		writer:    &fakeWriter{fs: fs},
		fs:        fs,
		folder:    "/startup",
		scriptDir: t.TempDir(),
	}
	if err := fs.MkdirAll(s.folder, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	oldTable, oldSpawner, oldWriter := newTable, newSpawner, newShortcutWriter
	oldFolder, oldFs, oldExeDir, oldPoll := startupFolder, appFs, executableDir, pollInterval
	t.Cleanup(func() {
		newTable, newSpawner, newShortcutWriter = oldTable, oldSpawner, oldWriter
		startupFolder, appFs, executableDir, pollInterval = oldFolder, oldFs, oldExeDir, oldPoll
	})

	newTable = func() proctable.Table { return s.table }
	newSpawner = func() supervisor.Spawner { return s.spawner }
	newShortcutWriter = func() startup.Writer { return s.writer }
	startupFolder = func() (string, error) { return s.folder, s.folderErr }
	appFs = fs
	executableDir = func() (string, error) { return s.scriptDir, nil }
	pollInterval = 5 * time.Millisecond
	return s
}

// silenceHelp stubs out the help printers for the duration of t.
func silenceHelp(t *testing.T) {
	t.Helper()
	prevCmd := common.SetShowCommandHelp(func(*cli.Context, string) error { return nil })
	prevApp := common.SetShowAppHelpAndExit(func(*cli.Context, int) {})
	t.Cleanup(func() {
		common.SetShowCommandHelp(prevCmd)
		common.SetShowAppHelpAndExit(prevApp)
	})
}
