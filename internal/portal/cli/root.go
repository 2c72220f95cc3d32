package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/campushq/collegeportal/internal/portal/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the shell loop needs.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	Open(path string)
	ListRoutes()
	Whoami()
}

func (a *App) getStatus() string {
	cur := a.session.Current()
	s := ""
	if cur.State == session.StateAuthenticated && cur.User != nil {
		s = cur.User.Email + " "
	}
	s = s + a.route
	return fmt.Sprintf("(%s)", s)
}

// Root starts the interactive shell on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the college portal (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runShell(ctx, a, a.getStatus, scanner)
}

// runShell reads a line, parses the first token as the command and
// dispatches to methods on 'a'. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runShell(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: open <path>, routes, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, register, routes, whoami, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			a.Open(args[0])

		case "routes":
			a.ListRoutes()

		case "whoami":
			a.Whoami()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
