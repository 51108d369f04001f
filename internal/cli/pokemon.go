package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poketools/pokesearch/internal/matchup"
	"github.com/poketools/pokesearch/internal/pokeapi"
)

// NewPokemonCmd creates the "pokemon" lookup command.
func NewPokemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pokemon <name>",
		Short: "Look up a Pokémon",
		Long:  "Look up a Pokémon by name and print its species, typing, weight,\nand defensive type match-ups.",
		Example: `  pokesearch pokemon pikachu
  pokesearch pokemon mr mime`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPokemon(cmd, strings.Join(args, " "))
		},
	}
}

func runPokemon(cmd *cobra.Command, name string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	pokemon, err := client.Pokemon(ctx, name)
	if err != nil {
		return err
	}

	// The species resource carries the localized display name and the
	// generation the Pokémon debuted in.
	species, err := client.Species(ctx, pokemon.Species.Name)
	if err != nil {
		return err
	}

	displayName := pokeapi.EnglishName(species.Names)
	if displayName == "" {
		displayName = DisplayName(pokemon.Name)
	}

	out := cmd.OutOrStdout()
	writeHeader(out, displayName, DisplayName(species.Generation.Name))
	fmt.Fprintln(out)

	types, typeNames, err := parsePokemonTypes(pokemon)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Types:\t%s\n", strings.Join(typeNames, ", "))
	fmt.Fprintf(out, "Weight:\t%s kg\n", formatWeight(pokemon.Weight))
	fmt.Fprintln(out)

	result, err := matchup.Compute(types)
	if err != nil {
		return fmt.Errorf("computing match-up for %q: %w", pokemon.Name, err)
	}

	fmt.Fprintln(out, headerStyle.Render("Defenses:"))
	renderMatchup(out, result)

	return nil
}

// parsePokemonTypes maps API type slots, in slot order, onto the static
// type set used by the match-up engine.
func parsePokemonTypes(pokemon *pokeapi.Pokemon) ([]matchup.Type, []string, error) {
	slots := make([]pokeapi.PokemonType, len(pokemon.Types))
	copy(slots, pokemon.Types)
	sort.Slice(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	types := make([]matchup.Type, 0, len(slots))
	names := make([]string, 0, len(slots))
	for _, slot := range slots {
		typ, err := matchup.ParseType(slot.Type.Name)
		if err != nil {
			return nil, nil, fmt.Errorf("unexpected type for %q: %w", pokemon.Name, err)
		}
		types = append(types, typ)
		names = append(names, typ.DisplayName())
	}
	return types, names, nil
}

// formatWeight converts API hectograms into kilograms for display.
func formatWeight(hectograms int) string {
	if hectograms%10 == 0 {
		return fmt.Sprintf("%d", hectograms/10)
	}
	return fmt.Sprintf("%d.%d", hectograms/10, hectograms%10)
}
