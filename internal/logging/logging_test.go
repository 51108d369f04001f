package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("DefaultLevel", func(t *testing.T) {
		logger := New(Config{Out: &bytes.Buffer{}})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("DebugLevel", func(t *testing.T) {
		logger := New(Config{Level: "debug", Out: &bytes.Buffer{}})
		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("InvalidLevelFallsBack", func(t *testing.T) {
		logger := New(Config{Level: "shouting", Out: &bytes.Buffer{}})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("JSONFormat", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Format: "json", Out: &buf})
		logger.Info().Str("k", "v").Msg("hello")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["message"])
		assert.Equal(t, "v", line["k"])
	})

	t.Run("AutoFormatNonTerminal", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Format: "auto", Out: &buf})
		logger.Info().Msg("auto")

		// A buffer is not a terminal, so auto selects json.
		var line map[string]any
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	})
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Format: "json", Out: &buf})
	logger := ComponentLogger(base, "resolver")
	logger.Info().Msg("tagged")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "resolver", line["component"])
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "json", Out: &buf})

	ctx := WithContext(context.Background(), logger)
	FromContext(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}
