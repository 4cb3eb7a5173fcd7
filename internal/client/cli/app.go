package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/api"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/config"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/models"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/notify"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/services"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/session"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/table"
	"github.com/MoulikGL/basiccrudapp-admin/internal/logging"
)

// App wires the console together: one session store, one auth service and
// one table controller per resource screen.
type App struct {
	config   *config.Config
	log      logging.Logger
	store    *session.Store
	auth     services.AuthService
	users    *table.Controller[models.User]
	products *table.Controller[models.Product]

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application from configuration. A missing or invalid
// API base URL fails here, before any screen renders.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	apiClient, err := api.New(cfg.APIBaseURL, cfg.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("building api client: %w", err)
	}

	store := session.NewStore(cfg.SessionFile, log)
	store.Restore()

	a := &App{
		config: cfg,
		log:    log,
		store:  store,
		auth:   services.NewAuthService(apiClient, store),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	notifier := notify.NewLogNotifier(log)
	confirm := func(prompt string) bool { return Confirm(a.reader, prompt, a.out) }

	a.users = table.NewController(models.UserDescriptor(), apiClient, store, notifier, confirm, log)
	a.products = table.NewController(models.ProductDescriptor(), apiClient, store, notifier, confirm, log)

	return a, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.IsLoggedIn()
}

func (a *App) status() string {
	identity, _, ok := a.store.Current()
	if !ok {
		return ""
	}
	s := identity.FullName
	if identity.IsAdmin {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}
