// Package cli defines the cobra command tree for calabash.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calabashre/calabash/internal/auth"
	"github.com/calabashre/calabash/internal/catalog"
	"github.com/calabashre/calabash/internal/config"
	"github.com/calabashre/calabash/internal/favorites"
	"github.com/calabashre/calabash/internal/listing"
	"github.com/calabashre/calabash/internal/store"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calabash",
		Short:         "Browse and manage Sierra Leone property listings",
		Long:          "Calabash Real Estate: browse the property catalog, register as an agent, publish and manage listings, track favorites, and serve the JSON API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.calabash/calabash.db)")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newFavoriteCmd(),
		newFavoritesCmd(),
		newCreateCmd(),
		newUpdateCmd(),
		newArchiveCmd(),
		newMineCmd(),
		newBlogCmd(),
		newDescribeCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// services bundles everything a command needs over one open store.
type services struct {
	store     *store.Store
	cfg       config.Config
	auth      *auth.Service
	catalog   *catalog.Catalog
	favorites *favorites.Tracker
	listings  *listing.Manager
}

// openServices opens the store using the --db flag or the configured path
// and wires the marketplace services over it.
func openServices() (*services, error) {
	cfg := config.Load()

	path := flagDB
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}

	c := catalog.Open(s)
	return &services{
		store:     s,
		cfg:       cfg,
		auth:      auth.NewService(s, cfg.AuthorizationCode),
		catalog:   c,
		favorites: favorites.Open(s),
		listings:  listing.NewManager(c),
	}, nil
}

// close closes the store, logging any error to stderr.
func (sv *services) close() {
	if err := sv.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing store: %v\n", err)
	}
}

// requireSession returns the signed-in agent or an instruction to log in.
func (sv *services) requireSession() (auth.Agent, error) {
	agent, ok := sv.auth.Session()
	if !ok {
		return auth.Agent{}, fmt.Errorf("not signed in, run 'calabash login' first")
	}
	return agent, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
