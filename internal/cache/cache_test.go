package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry(t *testing.T) {
	key := "pokemon_pikachu"
	data := json.RawMessage(`{"name":"pikachu"}`)
	entry := NewEntry(key, data)

	assert.Equal(t, key, entry.Key)
	assert.Equal(t, data, entry.Data)
	assert.LessOrEqual(t, entry.Age(), time.Second)

	t.Run("JSON", func(t *testing.T) {
		encoded, err := json.Marshal(entry)
		require.NoError(t, err)

		var decoded Entry
		err = json.Unmarshal(encoded, &decoded)
		require.NoError(t, err)
		assert.Equal(t, entry.Key, decoded.Key)
		assert.JSONEq(t, string(entry.Data), string(decoded.Data))
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "pokemon_pikachu", Key("pokemon", "pikachu"))
	assert.Equal(t, "move_solar-beam", Key("Move", " Solar-Beam "))
	assert.Equal(t, "item", Key("item", ""))

	t.Run("Sanitized", func(t *testing.T) {
		key := Key("pokemon-species", "some/odd\\name:x")
		assert.NotContains(t, key, "/")
		assert.NotContains(t, key, "\\")
		assert.NotContains(t, key, ":")
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, Key("Ability", "Static"), Key("ability", "static"))
	})
}

func TestFileStore(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewFileStore(tempDir, true)
	require.NoError(t, err)
	assert.True(t, store.IsEnabled())
	assert.Equal(t, tempDir, store.Directory())

	key := "pokemon_pikachu"
	data := json.RawMessage(`{"name":"pikachu","weight":60}`)

	t.Run("SetAndGet", func(t *testing.T) {
		err := store.Set(key, data)
		require.NoError(t, err)

		entry, err := store.Get(key)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(entry.Data))

		count, _ := store.Count()
		assert.Equal(t, 1, count)

		size, _ := store.Size()
		assert.Greater(t, size, int64(0))
	})

	t.Run("NoTempResidue", func(t *testing.T) {
		require.NoError(t, store.Set(key, data))

		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()))
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		updated := json.RawMessage(`{"name":"pikachu","weight":61}`)
		require.NoError(t, store.Set(key, updated))

		entry, err := store.Get(key)
		require.NoError(t, err)
		assert.JSONEq(t, string(updated), string(entry.Data))
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := store.Get("pokemon_missingno")
		assert.ErrorIs(t, err, ErrCacheNotFound)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		_, err := store.Get("")
		assert.ErrorIs(t, err, ErrInvalidCacheKey)
		assert.ErrorIs(t, store.Set("", data), ErrInvalidCacheKey)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(key))

		_, err := store.Get(key)
		assert.ErrorIs(t, err, ErrCacheNotFound)

		// Idempotent.
		assert.NoError(t, store.Delete(key))
	})

	t.Run("Clear", func(t *testing.T) {
		_ = store.Set("k1", data)
		_ = store.Set("k2", data)
		require.NoError(t, store.Clear())
		count, _ := store.Count()
		assert.Equal(t, 0, count)
	})

	t.Run("Disabled", func(t *testing.T) {
		disabledStore, err := NewFileStore("", false)
		require.NoError(t, err)
		assert.False(t, disabledStore.IsEnabled())
		assert.ErrorIs(t, disabledStore.Set("k", data), ErrCacheDisabled)
		_, err = disabledStore.Get("k")
		assert.ErrorIs(t, err, ErrCacheDisabled)
		_, err = disabledStore.Count()
		assert.ErrorIs(t, err, ErrCacheDisabled)
	})

	t.Run("CorruptEntry", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := store.Get("broken")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCacheNotFound)
	})
}

func TestConcurrentReadersNeverSeePartialWrites(t *testing.T) {
	dir := t.TempDir()

	// Two stores on the same directory stand in for two processes
	// sharing a cache.
	writer, err := NewFileStore(dir, true)
	require.NoError(t, err)
	reader, err := NewFileStore(dir, true)
	require.NoError(t, err)

	key := "pokemon_snorlax"
	payload := json.RawMessage(`{"name":"snorlax","weight":4600}`)
	require.NoError(t, writer.Set(key, payload))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = writer.Set(key, payload)
		}
	}()

	for i := 0; i < 200; i++ {
		entry, getErr := reader.Get(key)
		require.NoError(t, getErr, "read %d observed a torn entry", i)
		assert.JSONEq(t, string(payload), string(entry.Data))
	}
	<-done
}

func TestNewFileStoreErrors(t *testing.T) {
	t.Run("EmptyDirectory", func(t *testing.T) {
		_, err := NewFileStore("", true)
		assert.Error(t, err)
	})

	t.Run("CreatesDirectory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "cache")
		store, err := NewFileStore(dir, true)
		require.NoError(t, err)
		assert.DirExists(t, dir)
		assert.True(t, store.IsEnabled())
	})
}
