package cli

import (
	"context"

	"github.com/poketools/pokesearch/internal/config"
)

// contextKey is a private type for context values set by this package.
type contextKey int

const configKey contextKey = iota

// withConfig attaches the resolved configuration to ctx.
func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the configuration attached by setupContext,
// or defaults when the command runs outside the root command (tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.New()
}
