// Package cli wires the pokesearch cobra commands: one lookup command
// per entity kind, a pure-computation type command, and cache
// maintenance.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/poketools/pokesearch/internal/cache"
	"github.com/poketools/pokesearch/internal/config"
	"github.com/poketools/pokesearch/internal/logging"
	"github.com/poketools/pokesearch/internal/pokeapi"
)

// rootFlags holds the persistent flag values shared by all subcommands.
type rootFlags struct {
	cacheDir string
	noCache  bool
	debug    bool
	timeout  int
}

// NewRootCmd creates the root cobra command for the pokesearch CLI.
func NewRootCmd(ver string) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:     "pokesearch",
		Short:   "Look up Pokémon game data from the command line",
		Long:    "pokesearch queries the PokéAPI for Pokémon, abilities, moves and items,\ncaching responses on disk, and computes type match-ups offline.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupContext(cmd, &flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.cacheDir, "cache-dir", "", "cache directory (default \".cache\")")
	cmd.PersistentFlags().BoolVar(&flags.noCache, "no-cache", false, "disable response caching")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().IntVar(&flags.timeout, "timeout", 0, "HTTP timeout in seconds (0 = use config default)")

	cmd.AddCommand(
		NewPokemonCmd(), NewAbilityCmd(), NewMoveCmd(), NewItemCmd(),
		NewTypeCmd(), NewCacheCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Look up a Pokémon
  pokesearch pokemon pikachu

  # Look up an ability, move or item
  pokesearch ability static
  pokesearch move solar beam
  pokesearch item razor claw

  # Compute a defensive type match-up (no network access)
  pokesearch type ground flying

  # Use a custom cache directory
  pokesearch pokemon snorlax --cache-dir /tmp/pokecache

  # Show cache statistics or empty the cache
  pokesearch cache info
  pokesearch cache clear`

// setupContext loads configuration, applies flag overrides, builds the
// logger, and attaches everything to the command context.
func setupContext(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flags.cacheDir != "" {
		cfg.CacheDir = flags.cacheDir
	}
	if flags.noCache {
		cfg.CacheEnabled = false
	}
	if flags.timeout > 0 {
		cfg.TimeoutSeconds = flags.timeout
	}
	if flags.debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "console"
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Out:    cmd.ErrOrStderr(),
	})

	ctx := logging.WithContext(cmd.Context(), logger)
	ctx = withConfig(ctx, cfg)
	cmd.SetContext(ctx)

	return nil
}

// newStore builds the cache store from the resolved configuration.
func newStore(cmd *cobra.Command) (*cache.FileStore, error) {
	cfg := configFromContext(cmd.Context())

	store, err := cache.NewFileStore(cfg.CacheDir, cfg.CacheEnabled)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	return store, nil
}

// newClient builds the API client from the resolved configuration.
func newClient(cmd *cobra.Command) (*pokeapi.Client, error) {
	cfg := configFromContext(cmd.Context())

	store, err := newStore(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.ComponentLogger(*logging.FromContext(cmd.Context()), "pokeapi")
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	return pokeapi.NewClient(cfg.BaseURL, timeout, store, logger), nil
}
