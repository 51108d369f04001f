package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poketools/pokesearch/internal/matchup"
)

// NewTypeCmd creates the "type" match-up command. It is a pure
// computation over the static effectiveness table and never touches the
// network or the cache.
func NewTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <name> [<name>]",
		Short: "Compute a defensive type match-up",
		Long: "Compute the combined attack multiplier of every attacking type\n" +
			"against one or two defending types.",
		Example: `  pokesearch type fire
  pokesearch type ground flying`,
		Args: cobra.RangeArgs(1, matchup.MaxDefendingTypes),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runType(cmd, args)
		},
	}
}

func runType(cmd *cobra.Command, args []string) error {
	defending := make([]matchup.Type, 0, len(args))
	for _, arg := range args {
		typ, err := matchup.ParseType(arg)
		if err != nil {
			return err
		}
		defending = append(defending, typ)
	}

	result, err := matchup.Compute(defending)
	if err != nil {
		return err
	}

	names := make([]string, len(defending))
	for i, t := range defending {
		names[i] = t.DisplayName()
	}

	out := cmd.OutOrStdout()
	writeHeader(out, strings.Join(names, " / "), "")
	fmt.Fprintln(out)
	renderMatchup(out, result)

	return nil
}
