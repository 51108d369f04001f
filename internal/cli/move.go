package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/poketools/pokesearch/internal/pokeapi"
)

// NewMoveCmd creates the "move" lookup command.
func NewMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <name>",
		Short: "Look up a move",
		Long:  "Look up a move by name and print its damage class, type, battle\nstats and effect text.",
		Example: `  pokesearch move tackle
  pokesearch move solar beam`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, strings.Join(args, " "))
		},
	}
}

func runMove(cmd *cobra.Command, name string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	move, err := client.Move(cmd.Context(), name)
	if err != nil {
		return err
	}

	displayName := pokeapi.EnglishName(move.Names)
	if displayName == "" {
		displayName = DisplayName(move.Name)
	}

	out := cmd.OutOrStdout()
	writeHeader(out, displayName, DisplayName(move.Generation.Name))
	fmt.Fprintln(out)

	const tabPadding = 2
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(w, "Class:\t%s\n", DisplayName(move.DamageClass.Name))
	fmt.Fprintf(w, "Type:\t%s\n", DisplayName(move.Type.Name))
	fmt.Fprintf(w, "PP:\t%s\n", orDash(move.PP))
	fmt.Fprintf(w, "Power:\t%s\n", orDash(move.Power))
	fmt.Fprintf(w, "Accuracy:\t%s\n", orDash(move.Accuracy))
	if move.Priority != 0 {
		fmt.Fprintf(w, "Priority:\t%d\n", move.Priority)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Target: %s\n", DisplayName(move.Target.Name))
	writeRule(out)
	fmt.Fprintln(out, substituteEffectChance(pokeapi.EnglishEffect(move.EffectEntries), move.EffectChance))

	return nil
}
