package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	charm "github.com/charmbracelet/log"

	"github.com/dmitrijs2005/digibank/internal/client/accounts"
	"github.com/dmitrijs2005/digibank/internal/client/alerts"
	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/cards"
	"github.com/dmitrijs2005/digibank/internal/client/config"
	"github.com/dmitrijs2005/digibank/internal/client/history"
	"github.com/dmitrijs2005/digibank/internal/client/payments"
	"github.com/dmitrijs2005/digibank/internal/client/session"
	"github.com/dmitrijs2005/digibank/internal/client/statements"
	"github.com/dmitrijs2005/digibank/internal/client/storage"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// App wires the banking services to the terminal.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Manager
	history *history.Engine

	accounts   *accounts.Service
	payments   *payments.Service
	statements *statements.Service
	cards      *cards.Service
	alerts     *alerts.Service

	reader *bufio.Reader
	out    io.Writer

	closeDB func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewCharmLogger(charm.NewWithOptions(os.Stderr, charm.Options{
		ReportTimestamp: true,
	}))

	db, err := storage.OpenDatabase(ctx, c.DataFile)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	out := os.Stdout
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, &toastNotifier{out: out}, log)

	durable := storage.NewSQLiteStore(db)
	ephemeral := storage.NewMemoryStore()

	return &App{
		config:     c,
		log:        log,
		session:    session.NewManager(apiClient, durable, ephemeral, log),
		history:    history.NewEngine(apiClient, log),
		accounts:   accounts.NewService(apiClient, log),
		payments:   payments.NewService(apiClient, log),
		statements: statements.NewService(apiClient, log),
		cards:      cards.NewService(apiClient, log),
		alerts:     alerts.NewService(apiClient, log),
		reader:     bufio.NewReader(os.Stdin),
		out:        out,
		closeDB:    db.Close,
	}, nil
}

// Run restores any saved session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeDB != nil {
			_ = a.closeDB()
		}
	}()

	if user, err := a.session.Restore(ctx); err == nil && user != nil {
		printlnFn("Welcome back,", user.DisplayName())
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateLoggedIn
}
