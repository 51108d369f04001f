package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poketools/pokesearch/internal/pokeapi"
)

// NewAbilityCmd creates the "ability" lookup command.
func NewAbilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ability <name>",
		Short: "Look up an ability",
		Example: `  pokesearch ability static
  pokesearch ability flash fire`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAbility(cmd, strings.Join(args, " "))
		},
	}
}

func runAbility(cmd *cobra.Command, name string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	ability, err := client.Ability(cmd.Context(), name)
	if err != nil {
		return err
	}

	displayName := pokeapi.EnglishName(ability.Names)
	if displayName == "" {
		displayName = DisplayName(ability.Name)
	}

	out := cmd.OutOrStdout()
	writeHeader(out, displayName, DisplayName(ability.Generation.Name))
	writeRule(out)
	fmt.Fprintln(out, pokeapi.EnglishEffect(ability.EffectEntries))

	return nil
}
