package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"paygate/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errBadFilter = errors.New("filter item must be name=value")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Signup(ctx context.Context) error
	ShowAccount(ctx context.Context) error
	List(ctx context.Context, partial models.InvoiceFilters) error
	Refresh(ctx context.Context) error
	GoToPage(ctx context.Context, page int) error
	Show(ctx context.Context, id string) error
	Create(ctx context.Context) error
}

// parseFilterArgs converts "name=value" tokens into a partial filter set.
// Accepted names: status, start_date, end_date, search, page.
func parseFilterArgs(args []string) (models.InvoiceFilters, error) {
	var f models.InvoiceFilters
	for _, item := range args {
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			return f, fmt.Errorf("%w: %q", errBadFilter, item)
		}
		name, value := parts[0], parts[1]
		switch name {
		case "status":
			f.Status = value
		case "start_date":
			f.StartDate = value
		case "end_date":
			f.EndDate = value
		case "search":
			f.Search = value
		case "page":
			n, err := strconv.Atoi(value)
			if err != nil {
				return f, fmt.Errorf("%w: %q", errBadFilter, item)
			}
			f.Page = n
		default:
			return f, fmt.Errorf("%w: unknown name %q", errBadFilter, name)
		}
	}
	return f, nil
}

// runREPL starts a simple read–eval–print loop for the paygate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — store and validate an API key
//	  - signup         — create a merchant account
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - (l)ist         — list invoices
//	  - filter n=v ... — change filters (status, start_date, end_date, search, page)
//	  - page <n>       — jump to a page
//	  - refresh        — re-fetch the current view
//	  - show <id>      — show a single invoice
//	  - create         — create an invoice (interactive)
//	  - account        — show the authenticated account
//	  - logout         — clear the stored credential
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("paygate %s> ", statusFn()))
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
				printlnFn("Available commands: (l)ist, filter, page, refresh, show, create, account, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "account":
			_ = a.ShowAccount(ctx)

		case "l", "list":
			_ = a.List(ctx, models.InvoiceFilters{})

		case "filter":
			f, err := parseFilterArgs(args)
			if err != nil {
				printlnFn("Usage: filter status=pending start_date=2026-01-01 search=text")
				continue
			}
			_ = a.List(ctx, f)

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.GoToPage(ctx, n)

		case "refresh":
			_ = a.Refresh(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "create":
			_ = a.Create(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// status renders the prompt fragment shown while the REPL runs.
func (a *App) status() string {
	if !a.session.IsAuthenticated() {
		return ""
	}
	if acc := a.session.Account(); acc != nil && acc.Name != "" {
		return "(" + acc.Name + ")"
	}
	return "(authenticated)"
}
