package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Verify(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Sell(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the AutoHub CLI.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help            — show available commands
//	  - signup          — create an account
//	  - verify <token>  — confirm an email-verification token
//	  - login           — authenticate
//	  - browse          — the car listing screen
//	  - show <id>       — a single car
//	  - exit | quit     — leave the program
//
//	Logged in, additionally:
//	  - sell            — list a car for sale
//	  - profile         — view and edit the profile, manage own listings
//	  - logout          — log out
//
// sell and profile are guarded: without a persisted token they bounce the
// user to the login screen instead of running.
//
// Any errors returned by command handlers are logged by the handlers
// themselves and swallowed here. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		fmt.Printf("autohub %s> ", statusFn())
		line, err := r.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: browse, show <id>, sell, profile, logout, exit")
			} else {
				printlnFn("Available commands: signup, verify <token>, login, browse, show <id>, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "verify":
			if len(args) == 0 {
				printlnFn("Usage: verify <token>")
				continue
			}
			_ = a.Verify(ctx, args[0])

		case "login":
			_ = a.Login(ctx)

		case "b", "browse":
			_ = a.Browse(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "sell":
			_ = a.Sell(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
