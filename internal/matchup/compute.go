package matchup

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxDefendingTypes is the game-mechanics cap on simultaneous defending types.
const MaxDefendingTypes = 2

// ErrNoTypes is returned when Compute is called with no defending types.
var ErrNoTypes = errors.New("at least one defending type is required")

// Result holds the combined attack multiplier, in eighths, for every
// attacking type against a fixed set of defending types. Values are one
// of 0, 2, 4, 8, 16, 32 (0x, 0.25x, 0.5x, 1x, 2x, 4x).
type Result struct {
	multipliers [NumTypes]uint8
}

// Multiplier returns the combined multiplier, in eighths, for the given
// attacking type.
func (r Result) Multiplier(attacking Type) uint8 {
	return r.multipliers[attacking]
}

// Group is one bucket of attacking types sharing a combined multiplier.
type Group struct {
	// Eighths is the multiplier in eighths (32 = 4x down to 0 = immune).
	Eighths uint8

	// Types lists the attacking types in canonical declaration order.
	Types []Type
}

// groupOrder lists the possible combined multipliers from strongest to
// weakest, the order match-up groups are presented in.
var groupOrder = [6]uint8{32, 16, 8, 4, 2, 0}

// Groups buckets the attacking types by combined multiplier, ordered by
// multiplier descending. Empty buckets are omitted; within a bucket the
// types keep canonical declaration order.
func (r Result) Groups() []Group {
	groups := make([]Group, 0, len(groupOrder))
	for _, eighths := range groupOrder {
		var types []Type
		for attacking, multiplier := range r.multipliers {
			if multiplier == eighths {
				types = append(types, Type(attacking))
			}
		}
		if len(types) > 0 {
			groups = append(groups, Group{Eighths: eighths, Types: types})
		}
	}
	return groups
}

// Compute builds the defensive match-up for one or two defending types.
// Duplicate defending types collapse to one before validation, so a
// duplicated single type behaves exactly like that type alone. More than
// MaxDefendingTypes distinct types is rejected.
func Compute(defending []Type) (Result, error) {
	if len(defending) == 0 {
		return Result{}, ErrNoTypes
	}

	distinct := dedupe(defending)
	if len(distinct) > MaxDefendingTypes {
		return Result{}, fmt.Errorf("at most %d defending types are allowed, got %d", MaxDefendingTypes, len(distinct))
	}

	var result Result
	for attacking := range result.multipliers {
		combined := uint8(neutral)
		for _, defender := range distinct {
			// Both factors are in eighths; dividing by eight keeps the
			// product in eighths without losing exactness.
			combined = uint8(uint16(combined) * uint16(effectiveness[attacking][defender]) / neutral)
		}
		result.multipliers[attacking] = combined
	}
	return result, nil
}

// dedupe removes duplicate types while preserving first-seen order.
func dedupe(types []Type) []Type {
	var seen [NumTypes]bool
	distinct := make([]Type, 0, len(types))
	for _, t := range types {
		if t < 0 || t >= NumTypes || seen[t] {
			continue
		}
		seen[t] = true
		distinct = append(distinct, t)
	}
	return distinct
}

// FormatMultiplier renders a multiplier in eighths as a human-readable
// factor such as "4x", "1x" or "0.25x".
func FormatMultiplier(eighths uint8) string {
	switch eighths {
	case 0:
		return "0x"
	case 2:
		return "0.25x"
	case 4:
		return "0.5x"
	default:
		return strconv.Itoa(int(eighths)/neutral) + "x"
	}
}
