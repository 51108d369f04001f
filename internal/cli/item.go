package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poketools/pokesearch/internal/logging"
	"github.com/poketools/pokesearch/internal/pokeapi"
)

// NewItemCmd creates the "item" lookup command.
func NewItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item <name>",
		Short: "Look up an item",
		Example: `  pokesearch item potion
  pokesearch item razor claw`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItem(cmd, strings.Join(args, " "))
		},
	}
}

func runItem(cmd *cobra.Command, name string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	item, err := client.Item(ctx, name)
	if err != nil {
		return err
	}

	displayName := pokeapi.EnglishName(item.Names)
	if displayName == "" {
		displayName = DisplayName(item.Name)
	}

	out := cmd.OutOrStdout()
	writeHeader(out, displayName, DisplayName(item.Category.Name))
	writeRule(out)

	if item.FlingPower != nil && item.FlingEffect != nil {
		// The fling description lives in its own resource; a failed
		// follow only drops this line, not the whole lookup.
		if effect, flingErr := client.ItemFlingEffect(ctx, item.FlingEffect.Name); flingErr == nil {
			fmt.Fprintf(out, "Thrown with fling (%d power)\n:   %s\n\n",
				*item.FlingPower, pokeapi.EnglishShortEffect(effect.EffectEntries))
		} else {
			logging.FromContext(ctx).Warn().Err(flingErr).Msg("skipping fling effect")
		}
	}

	fmt.Fprintln(out, pokeapi.EnglishEffect(item.EffectEntries))

	return nil
}
