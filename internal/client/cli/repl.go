package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	ChangePassword(ctx context.Context) error

	Accounts(ctx context.Context) error
	OpenAccount(ctx context.Context) error
	CloseAccount(ctx context.Context) error

	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Transfer(ctx context.Context) error

	History(ctx context.Context, args []string) error
	HistoryNext(ctx context.Context) error
	HistoryPrev(ctx context.Context) error
	HistoryPage(ctx context.Context, args []string) error

	Statement(ctx context.Context) error
	StatementPDF(ctx context.Context) error

	Cards(ctx context.Context) error
	ApplyCard(ctx context.Context) error
	RepayCard(ctx context.Context) error

	Alerts(ctx context.Context) error
	MarkAlertRead(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, forgotpw, resetpw, exit"
	helpLoggedIn  = "Available commands: accounts, open, close, deposit, withdraw, transfer, " +
		"history [type=T] [account=N] [range=R] [limit=N], next, prev, page <n>, " +
		"statement, pdf, cards, applycard, repay, alerts, read <id>, whoami, passwd, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the banking CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bank %s> ", statusFn()))
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
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "forgotpw":
			_ = a.ForgotPassword(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "a", "accounts":
			_ = a.Accounts(ctx)

		case "open":
			_ = a.OpenAccount(ctx)

		case "close":
			_ = a.CloseAccount(ctx)

		case "deposit":
			_ = a.Deposit(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "transfer":
			_ = a.Transfer(ctx)

		case "h", "history":
			_ = a.History(ctx, args)

		case "n", "next":
			_ = a.HistoryNext(ctx)

		case "p", "prev":
			_ = a.HistoryPrev(ctx)

		case "page":
			_ = a.HistoryPage(ctx, args)

		case "statement":
			_ = a.Statement(ctx)

		case "pdf":
			_ = a.StatementPDF(ctx)

		case "cards":
			_ = a.Cards(ctx)

		case "applycard":
			_ = a.ApplyCard(ctx)

		case "repay":
			_ = a.RepayCard(ctx)

		case "alerts":
			_ = a.Alerts(ctx)

		case "read":
			_ = a.MarkAlertRead(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
