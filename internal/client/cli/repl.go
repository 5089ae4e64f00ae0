package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. App satisfies it; tests
// provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, path string) error
	Menu() error
	Routes() error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Theme(ctx context.Context) error
	Locale(ctx context.Context, args []string) error
	Status() error
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit"/"quit" or ctx cancellation.
//
//	help              show available commands
//	go <path>         navigate
//	menu              show the sidebar
//	routes            list every route and its access
//	login | logout    sign in or out
//	register          create an account
//	theme             toggle dark mode
//	locale [value]    show or set the locale
//	status            show session and connectivity
//	exit | quit       leave the program
//
// Command errors are reported and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "mantis %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: go <path>, menu, routes, theme, locale [value], status, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: go <path>, menu, routes, login, register, theme, locale [value], status, exit")
			}

		case "go":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: go <path>")
				continue
			}
			cmdErr = a.Navigate(ctx, args[0])

		case "menu":
			cmdErr = a.Menu()

		case "routes":
			cmdErr = a.Routes()

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "theme":
			cmdErr = a.Theme(ctx)

		case "locale":
			cmdErr = a.Locale(ctx, args)

		case "status":
			cmdErr = a.Status()

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
	}
}
