package pokeapi

// The types below mirror the subset of the PokéAPI v2 schema that the
// presenter needs. Field names follow the API's snake_case JSON keys.

// NamedResource is a reference to another API resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LocalizedName is a display name in one language.
type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// VerboseEffect is a localized long-form effect description.
type VerboseEffect struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// Effect is a localized short effect description (used by fling effects).
type Effect struct {
	Effect   string        `json:"effect"`
	Language NamedResource `json:"language"`
}

// englishLanguage is the PokéAPI language code used for display text.
const englishLanguage = "en"

// EnglishName picks the English entry from a localized name list,
// falling back to the first entry when no English one exists.
func EnglishName(names []LocalizedName) string {
	for _, n := range names {
		if n.Language.Name == englishLanguage {
			return n.Name
		}
	}
	if len(names) > 0 {
		return names[0].Name
	}
	return ""
}

// EnglishEffect picks the English entry from a verbose effect list,
// falling back to the first entry when no English one exists.
func EnglishEffect(entries []VerboseEffect) string {
	for _, e := range entries {
		if e.Language.Name == englishLanguage {
			return e.Effect
		}
	}
	if len(entries) > 0 {
		return entries[0].Effect
	}
	return ""
}

// EnglishShortEffect behaves like EnglishEffect for plain effect lists.
func EnglishShortEffect(entries []Effect) string {
	for _, e := range entries {
		if e.Language.Name == englishLanguage {
			return e.Effect
		}
	}
	if len(entries) > 0 {
		return entries[0].Effect
	}
	return ""
}

// PokemonType is one slot of a Pokémon's typing.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// Pokemon is the /pokemon/{name} resource.
type Pokemon struct {
	Name string `json:"name"`

	// Weight is in hectograms.
	Weight int `json:"weight"`

	Types   []PokemonType `json:"types"`
	Species NamedResource `json:"species"`
}

// Species is the /pokemon-species/{name} resource.
type Species struct {
	Name       string          `json:"name"`
	Names      []LocalizedName `json:"names"`
	Generation NamedResource   `json:"generation"`
}

// Ability is the /ability/{name} resource.
type Ability struct {
	Name          string          `json:"name"`
	Names         []LocalizedName `json:"names"`
	Generation    NamedResource   `json:"generation"`
	EffectEntries []VerboseEffect `json:"effect_entries"`
}

// Move is the /move/{name} resource. PP, Power and Accuracy are
// pointers because the API omits them for some moves.
type Move struct {
	Name          string          `json:"name"`
	Names         []LocalizedName `json:"names"`
	Generation    NamedResource   `json:"generation"`
	DamageClass   NamedResource   `json:"damage_class"`
	Type          NamedResource   `json:"type"`
	PP            *int            `json:"pp"`
	Power         *int            `json:"power"`
	Accuracy      *int            `json:"accuracy"`
	Priority      int             `json:"priority"`
	EffectChance  *int            `json:"effect_chance"`
	Target        NamedResource   `json:"target"`
	EffectEntries []VerboseEffect `json:"effect_entries"`
}

// Item is the /item/{name} resource.
type Item struct {
	Name          string          `json:"name"`
	Names         []LocalizedName `json:"names"`
	Category      NamedResource   `json:"category"`
	FlingPower    *int            `json:"fling_power"`
	FlingEffect   *NamedResource  `json:"fling_effect"`
	EffectEntries []VerboseEffect `json:"effect_entries"`
}

// FlingEffect is the /item-fling-effect/{name} resource.
type FlingEffect struct {
	Name          string   `json:"name"`
	EffectEntries []Effect `json:"effect_entries"`
}
