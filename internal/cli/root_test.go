package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poketools/pokesearch/internal/config"
)

// executeCommand runs the root command with the given args and returns
// the combined output. HOME is redirected so a developer's config file
// never leaks into tests.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd("test")
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.0.0")

	assert.Equal(t, "pokesearch", root.Name())
	assert.Equal(t, "1.0.0", root.Version)

	expected := []string{"pokemon", "ability", "move", "item", "type", "cache"}
	for _, name := range expected {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %s", name)
	}
}

func TestPersistentFlags(t *testing.T) {
	root := NewRootCmd("test")

	for _, flag := range []string{"cache-dir", "no-cache", "debug", "timeout"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestSetupContextOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cacheDir := t.TempDir()

	root := NewRootCmd("test")
	root.SetArgs([]string{"cache", "info", "--cache-dir", cacheDir, "--timeout", "7"})

	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), cacheDir)
}

func TestConfigFromContextDefaults(t *testing.T) {
	// Outside the root command the helper falls back to defaults.
	cfg := configFromContext(context.Background())
	assert.Equal(t, config.DefaultBaseURL, cfg.BaseURL)
}

func TestUnknownCommand(t *testing.T) {
	_, err := executeCommand(t, "berry", "cheri")
	assert.Error(t, err)
}
