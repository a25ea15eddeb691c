package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"paygate/internal/api"
	"paygate/internal/config"
	"paygate/internal/invoices"
	"paygate/internal/localdb"
	"paygate/internal/logging"
	"paygate/internal/models"
	"paygate/internal/repositories/credentials"
	"paygate/internal/session"
)

// authState is the slice of session.Session the commands need. Tests provide
// a lightweight stub.
type authState interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, candidate string) bool
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Account() *models.Account
	Credential() string
}

// App wires the client components behind the command surface.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	client  api.Client
	session authState
	repo    credentials.Repository
	list    *invoices.ListState
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local credential store and constructs the API adapter and
// session state for the given configuration.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	db, err := localdb.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "opening local store", "path", cfg.DBPath, "error", err)
		return nil, err
	}

	repo := credentials.NewSQLiteRepository(db)

	client := api.NewHTTPClient(cfg.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithLogger(log),
	)

	return &App{
		cfg:     cfg,
		log:     log,
		client:  client,
		session: session.New(client, repo, log),
		repo:    repo,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// isLoggedIn reports whether a credential is active, initializing the
// session from the store on first use.
func (a *App) isLoggedIn() bool {
	_ = a.session.Init(context.Background())
	return a.session.IsAuthenticated()
}

func (a *App) fetchOwnAccount(ctx context.Context) (*models.Account, error) {
	return a.client.GetAccount(ctx, a.session.Credential())
}

func (a *App) createAccount(ctx context.Context, name, email string) (*models.Account, error) {
	return a.client.CreateAccount(ctx, models.CreateAccountInput{Name: name, Email: email})
}
