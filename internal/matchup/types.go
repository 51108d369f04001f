// Package matchup computes defensive type match-ups over the static
// 18x18 effectiveness table. All arithmetic is exact fixed-point in
// eighths of a multiplier.
package matchup

import (
	"fmt"
	"strings"
)

// Type identifies one of the 18 elemental types. The zero-based values
// follow the PokéAPI id order, which is also the canonical display order
// used when rendering match-up groups.
type Type int

// The full closed set of types, in canonical declaration order.
const (
	Normal Type = iota
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy
)

// NumTypes is the size of the closed type set.
const NumTypes = 18

// typeNames holds the lowercase API-style name for each type, indexed by Type.
var typeNames = [NumTypes]string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// String returns the lowercase API-style name of the type.
func (t Type) String() string {
	if t < 0 || t >= NumTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// DisplayName returns the capitalized human-readable name of the type.
func (t Type) DisplayName() string {
	name := t.String()
	if len(name) == 0 || name[0] == 'T' {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// AllTypes returns every type in canonical declaration order.
func AllTypes() []Type {
	types := make([]Type, NumTypes)
	for i := range types {
		types[i] = Type(i)
	}
	return types
}

// ParseType resolves a user-supplied type name to a Type.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseType(name string) (Type, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range typeNames {
		if candidate == normalized {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown type %q (valid types: %s)", name, strings.Join(typeNames[:], ", "))
}
