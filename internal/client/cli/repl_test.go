package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	paths []string
	err   error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Navigate(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return f.record("go")
}

func (f *fakeExec) Menu() error   { return f.record("menu") }
func (f *fakeExec) Routes() error { return f.record("routes") }

func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}

func (f *fakeExec) Register(context.Context) error { return f.record("register") }

func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func (f *fakeExec) Theme(context.Context) error { return f.record("theme") }

func (f *fakeExec) Locale(_ context.Context, args []string) error {
	return f.record("locale " + strings.Join(args, " "))
}

func (f *fakeExec) Status() error { return f.record("status") }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"go /colors",
		"menu",
		"routes",
		"",
		"theme",
		"locale",
		"locale de",
		"status",
		"register",
		"logout",
		"foobar",
		"exit",
		"status",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "(s)" }, rdr(input), &out)

	assert.Equal(t, []string{
		"login", "go", "menu", "routes", "theme", "locale ", "locale de",
		"status", "register", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"/colors"}, exec.paths)

	o := out.String()
	assert.Contains(t, o, "mantis (s)> ")
	assert.Contains(t, o, "Available commands: go <path>, menu, routes, login, register")
	assert.Contains(t, o, "Available commands: go <path>, menu, routes, theme, locale [value], status, logout, exit")
	assert.Contains(t, o, "Unknown command: foobar")
	assert.Contains(t, o, "Bye!")
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("go\nstatus"), &out)

	assert.Equal(t, []string{"status"}, exec.calls)
	assert.Contains(t, out.String(), "Usage: go <path>")
}

func TestRunREPL_ReportsCommandErrors(t *testing.T) {
	exec := &fakeExec{err: errors.New("boom")}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("menu\nquit\n"), &out)

	assert.Contains(t, out.String(), "Error: boom")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, rdr("menu\n"), &out)
	assert.Empty(t, exec.calls)
}
