package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poketools/pokesearch/internal/config"
)

// fixtureHandler serves a canned PokéAPI subset.
func fixtureHandler() http.Handler {
	fixtures := map[string]string{
		"/pokemon/pikachu": `{
			"name": "pikachu",
			"weight": 60,
			"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
			"species": {"name": "pikachu", "url": ""}
		}`,
		"/pokemon-species/pikachu": `{
			"name": "pikachu",
			"names": [{"name": "Pikachu", "language": {"name": "en", "url": ""}}],
			"generation": {"name": "generation-i", "url": ""}
		}`,
		"/ability/static": `{
			"name": "static",
			"names": [{"name": "Static", "language": {"name": "en", "url": ""}}],
			"generation": {"name": "generation-iii", "url": ""},
			"effect_entries": [{
				"effect": "Has a 30% chance of paralyzing attacking Pokémon on contact.",
				"short_effect": "Paralyzes on contact.",
				"language": {"name": "en", "url": ""}
			}]
		}`,
		"/move/thunder-shock": `{
			"name": "thunder-shock",
			"names": [{"name": "Thunder Shock", "language": {"name": "en", "url": ""}}],
			"generation": {"name": "generation-i", "url": ""},
			"damage_class": {"name": "special", "url": ""},
			"type": {"name": "electric", "url": ""},
			"pp": 30,
			"power": 40,
			"accuracy": 100,
			"priority": 0,
			"effect_chance": 10,
			"target": {"name": "selected-pokemon", "url": ""},
			"effect_entries": [{
				"effect": "Has a $effect_chance% chance to paralyze the target.",
				"short_effect": "",
				"language": {"name": "en", "url": ""}
			}]
		}`,
		"/item/razor-claw": `{
			"name": "razor-claw",
			"names": [{"name": "Razor Claw", "language": {"name": "en", "url": ""}}],
			"category": {"name": "held-items", "url": ""},
			"fling_power": 80,
			"fling_effect": {"name": "badly-poison", "url": ""},
			"effect_entries": [{
				"effect": "Raises the holder's critical hit rate one level.",
				"short_effect": "",
				"language": {"name": "en", "url": ""}
			}]
		}`,
		"/item-fling-effect/badly-poison": `{
			"name": "badly-poison",
			"effect_entries": [{
				"effect": "Badly poisons the target.",
				"language": {"name": "en", "url": ""}
			}]
		}`,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := fixtures[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	})
}

// executeLookup runs the root command against a fixture API server.
func executeLookup(t *testing.T, args ...string) (string, error) {
	t.Helper()

	server := httptest.NewServer(fixtureHandler())
	t.Cleanup(server.Close)

	t.Setenv(config.EnvBaseURL, server.URL)
	t.Setenv(config.EnvCacheDir, t.TempDir())

	return executeCommand(t, args...)
}

func TestPokemonCommand(t *testing.T) {
	out, err := executeLookup(t, "pokemon", "Pikachu")
	require.NoError(t, err)

	assert.Contains(t, out, "Pikachu (Generation I)")
	assert.Contains(t, out, "Types:\tElectric")
	assert.Contains(t, out, "Weight:\t6 kg")
	assert.Contains(t, out, "Defenses:")
	// Electric's defensive weaknesses and resists.
	assert.Contains(t, out, "Ground")
	assert.Contains(t, out, "Electric, Flying, Steel")
}

func TestAbilityCommand(t *testing.T) {
	out, err := executeLookup(t, "ability", "static")
	require.NoError(t, err)

	assert.Contains(t, out, "Static (Generation III)")
	assert.Contains(t, out, "---")
	assert.Contains(t, out, "paralyzing attacking Pokémon on contact")
}

func TestMoveCommand(t *testing.T) {
	out, err := executeLookup(t, "move", "thunder shock")
	require.NoError(t, err)

	assert.Contains(t, out, "Thunder Shock (Generation I)")
	assert.Contains(t, out, "Class:")
	assert.Contains(t, out, "Special")
	assert.Contains(t, out, "PP:")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "Target: Selected Pokemon")
	// Effect chance placeholder is substituted.
	assert.Contains(t, out, "Has a 10% chance to paralyze the target.")
	assert.NotContains(t, out, "$effect_chance")
	// Zero priority is omitted.
	assert.NotContains(t, out, "Priority:")
}

func TestItemCommand(t *testing.T) {
	out, err := executeLookup(t, "item", "razor claw")
	require.NoError(t, err)

	assert.Contains(t, out, "Razor Claw (Held Items)")
	assert.Contains(t, out, "Thrown with fling (80 power)")
	assert.Contains(t, out, "Badly poisons the target.")
	assert.Contains(t, out, "Raises the holder's critical hit rate one level.")
}

func TestLookupNotFound(t *testing.T) {
	_, err := executeLookup(t, "pokemon", "missingno")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missingno")
}

func TestLookupUsesCacheAcrossInvocations(t *testing.T) {
	requests := 0
	fixtures := fixtureHandler()
	counting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fixtures.ServeHTTP(w, r)
	}))
	t.Cleanup(counting.Close)

	cacheDir := t.TempDir()
	t.Setenv(config.EnvBaseURL, counting.URL)
	t.Setenv(config.EnvCacheDir, cacheDir)

	_, err := executeCommand(t, "ability", "static")
	require.NoError(t, err)
	firstRun := requests

	_, err = executeCommand(t, "ability", "static")
	require.NoError(t, err)

	assert.Equal(t, firstRun, requests, "second invocation must be served from cache")
}
