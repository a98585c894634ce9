package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/autohub/autohub-cli/internal/client/api"
	"github.com/autohub/autohub-cli/internal/client/config"
	"github.com/autohub/autohub-cli/internal/client/models"
	"github.com/autohub/autohub-cli/internal/client/session"
	"github.com/autohub/autohub-cli/internal/client/storage"
	"github.com/autohub/autohub-cli/internal/client/uploads"
	"github.com/autohub/autohub-cli/internal/logging"
)

// sessionStore is the slice of session.Manager the screens need; tests
// provide a lightweight stub.
type sessionStore interface {
	Current() *models.User
	HasToken(ctx context.Context) bool
	FetchUser(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context)
	Signup(ctx context.Context, form session.SignupForm) error
	Verify(ctx context.Context, token string) error
}

// uploader covers the image-host operations used by the sell and profile
// screens.
type uploader interface {
	Upload(ctx context.Context, path string) (string, error)
	UploadAll(ctx context.Context, paths []string) ([]string, error)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	api      api.Client
	session  sessionStore
	uploader uploader
	reader   *bufio.Reader
	db       *sql.DB
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault(os.Stderr)

	db, err := storage.InitDatabase(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "local store init failed", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.BackendBaseURL, c.RequestTimeout)
	tokens := storage.NewSQLiteRepository(db)

	return &App{
		config:   c,
		log:      log,
		api:      apiClient,
		session:  session.NewManager(apiClient, tokens, log),
		uploader: uploads.NewHost(c.ImageUploadURL, c.ImageUploadPreset, c.RequestTimeout),
		reader:   bufio.NewReader(os.Stdin),
		db:       db,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

// Run restores the session from the persisted token, then hands control to
// the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("Welcome to AutoHub (type 'help' for commands)")

	if err := a.session.FetchUser(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			printlnFn("Your session has expired, please log in again.")
		} else {
			a.log.Warn(ctx, "session restore failed", "error", err)
		}
	}

	// The REPL and the in-command prompts must share one buffered reader,
	// or lines typed ahead get lost between the two.
	runREPL(ctx, a, a.status, a.reader)
}

// status is shown in the prompt: the logged-in user's name, if any.
func (a *App) status() string {
	if u := a.session.Current(); u != nil {
		return "(" + u.FullName() + ")"
	}
	return ""
}
