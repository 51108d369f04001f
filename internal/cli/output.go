package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/poketools/pokesearch/internal/matchup"
)

// Styles for rendered output.
var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	multiplierStyle = lipgloss.NewStyle().Bold(true).Width(6)
)

// titleCaser capitalizes slug words for display.
var titleCaser = cases.Title(language.English)

// romanNumerals are slug words rendered fully uppercase, as in
// "generation-iv" -> "Generation IV".
var romanNumerals = map[string]bool{
	"i": true, "ii": true, "iii": true, "iv": true, "v": true,
	"vi": true, "vii": true, "viii": true, "ix": true,
}

// DisplayName converts an API slug like "razor-claw" or "generation-iv"
// into a human-readable name.
func DisplayName(slug string) string {
	if slug == "" {
		return ""
	}

	words := strings.Split(slug, "-")
	for i, word := range words {
		if romanNumerals[word] {
			words[i] = strings.ToUpper(word)
			continue
		}
		words[i] = titleCaser.String(word)
	}
	return strings.Join(words, " ")
}

// writeHeader prints the "Name (Qualifier)" line that opens every
// lookup result.
func writeHeader(w io.Writer, name, qualifier string) {
	if qualifier != "" {
		fmt.Fprintf(w, "%s (%s)\n", headerStyle.Render(name), qualifier)
		return
	}
	fmt.Fprintln(w, headerStyle.Render(name))
}

// writeRule prints the separator between a header block and effect text.
func writeRule(w io.Writer) {
	fmt.Fprintln(w, "\n---")
	fmt.Fprintln(w)
}

// renderMatchup prints one line per multiplier group, strongest first.
func renderMatchup(w io.Writer, result matchup.Result) {
	for _, group := range result.Groups() {
		names := make([]string, len(group.Types))
		for i, t := range group.Types {
			names[i] = t.DisplayName()
		}
		label := multiplierStyle.Render(matchup.FormatMultiplier(group.Eighths))
		fmt.Fprintf(w, "%s %s\n", label, strings.Join(names, ", "))
	}
}

// substituteEffectChance replaces the PokéAPI "$effect_chance"
// placeholder in effect text when the chance is known.
func substituteEffectChance(effect string, chance *int) string {
	if chance == nil {
		return effect
	}
	return strings.ReplaceAll(effect, "$effect_chance", strconv.Itoa(*chance))
}

// orDash renders an optional stat, using "-" when the API omits it.
func orDash(value *int) string {
	if value == nil {
		return "-"
	}
	return strconv.Itoa(*value)
}
