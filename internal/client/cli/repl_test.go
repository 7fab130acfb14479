package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", nil) }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Refresh(ctx context.Context) error { return f.record("refresh", nil) }
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Clients(ctx context.Context, args []string) error {
	return f.record("clients", args)
}
func (f *fakeExec) Products(ctx context.Context, args []string) error {
	return f.record("products", args)
}
func (f *fakeExec) Orders(ctx context.Context, args []string) error {
	return f.record("orders", args)
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"whoami",
		"clients show 7",
		"products",
		"orders 3",
		"",
		"refresh",
		"foobar",
		"logout",
		"exit",
		"whoami",
	}, "\n")

	exec := &fakeExec{loggedIn: false}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	want := []string{"login", "whoami", "clients", "products", "orders", "refresh", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls: got %v, want %v", exec.calls, want)
		}
	}
	if got := strings.Join(exec.args[2], " "); got != "show 7" {
		t.Fatalf("clients args: got %q", got)
	}
	if got := strings.Join(exec.args[4], " "); got != "3" {
		t.Fatalf("orders args: got %q", got)
	}
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true, err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("whoami\nproducts\nquit\n")))

	if len(exec.calls) != 2 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	errs := 0
	for _, l := range *lines {
		if l == "Error: boom" {
			errs++
		}
	}
	if errs != 2 {
		t.Fatalf("want 2 error lines, got %v", *lines)
	}
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("whoami")))

	if len(exec.calls) != 1 || exec.calls[0] != "whoami" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nexit\n")))

	found := false
	for _, l := range *lines {
		if l == "Available commands: register, login, exit" {
			found = true
		}
	}
	if !found {
		t.Fatalf("help output missing: %v", *lines)
	}
}
