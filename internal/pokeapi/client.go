// Package pokeapi is a typed PokéAPI v2 client with write-through
// file caching. Every request is served from the cache when a matching
// entry exists; otherwise the response is fetched once and cached
// before being returned.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/poketools/pokesearch/internal/cache"
)

// Retry policy for transient failures. Only transport errors and HTTP
// 429 are retried; a 404 or 5xx is returned immediately.
const (
	maxAttempts      = 3
	baseRetryBackoff = 500 * time.Millisecond
)

// Client fetches PokéAPI resources.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *cache.FileStore
	logger     zerolog.Logger
}

// NewClient creates a Client. store may be a disabled cache store, in
// which case every request goes to the network.
func NewClient(baseURL string, timeout time.Duration, store *cache.FileStore, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		logger:     logger,
	}
}

// Normalize converts a user-supplied entity name to the API's naming
// convention: lowercase, trimmed, spaces replaced with hyphens.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// Pokemon fetches the /pokemon/{name} resource.
func (c *Client) Pokemon(ctx context.Context, name string) (*Pokemon, error) {
	var pokemon Pokemon
	if err := c.get(ctx, "pokemon/"+Normalize(name), &pokemon); err != nil {
		return nil, fmt.Errorf("resolving pokemon %q: %w", name, err)
	}
	return &pokemon, nil
}

// Species fetches the /pokemon-species/{name} resource.
func (c *Client) Species(ctx context.Context, name string) (*Species, error) {
	var species Species
	if err := c.get(ctx, "pokemon-species/"+Normalize(name), &species); err != nil {
		return nil, fmt.Errorf("resolving species %q: %w", name, err)
	}
	return &species, nil
}

// Ability fetches the /ability/{name} resource.
func (c *Client) Ability(ctx context.Context, name string) (*Ability, error) {
	var ability Ability
	if err := c.get(ctx, "ability/"+Normalize(name), &ability); err != nil {
		return nil, fmt.Errorf("resolving ability %q: %w", name, err)
	}
	return &ability, nil
}

// Move fetches the /move/{name} resource.
func (c *Client) Move(ctx context.Context, name string) (*Move, error) {
	var move Move
	if err := c.get(ctx, "move/"+Normalize(name), &move); err != nil {
		return nil, fmt.Errorf("resolving move %q: %w", name, err)
	}
	return &move, nil
}

// Item fetches the /item/{name} resource.
func (c *Client) Item(ctx context.Context, name string) (*Item, error) {
	var item Item
	if err := c.get(ctx, "item/"+Normalize(name), &item); err != nil {
		return nil, fmt.Errorf("resolving item %q: %w", name, err)
	}
	return &item, nil
}

// ItemFlingEffect fetches the /item-fling-effect/{name} resource.
func (c *Client) ItemFlingEffect(ctx context.Context, name string) (*FlingEffect, error) {
	var effect FlingEffect
	if err := c.get(ctx, "item-fling-effect/"+Normalize(name), &effect); err != nil {
		return nil, fmt.Errorf("resolving fling effect %q: %w", name, err)
	}
	return &effect, nil
}

// get resolves path cache-first, fetching and writing through on a miss,
// then decodes the raw response into v.
func (c *Client) get(ctx context.Context, path string, v any) error {
	key := cache.Key(strings.Split(path, "/")...)

	if data, ok := c.fromCache(key); ok {
		c.logger.Debug().Str("path", path).Str("cache_key", key).Msg("cache hit")
		return json.Unmarshal(data, v)
	}

	body, err := c.fetch(ctx, path)
	if err != nil {
		return err
	}

	// A write failure must not block the lookup: the fetched data is
	// still perfectly usable, so log and carry on.
	if c.store != nil && c.store.IsEnabled() {
		if setErr := c.store.Set(key, body); setErr != nil {
			c.logger.Warn().Err(setErr).Str("cache_key", key).Msg("failed to cache response")
		}
	}

	return json.Unmarshal(body, v)
}

// fromCache attempts a cache read. Any failure, including a corrupt
// entry, degrades to a miss.
func (c *Client) fromCache(key string) (json.RawMessage, bool) {
	if c.store == nil {
		return nil, false
	}
	entry, err := c.store.Get(key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheDisabled) {
			c.logger.Debug().Err(err).Str("cache_key", key).Msg("cache read failed, treating as miss")
		}
		return nil, false
	}
	return entry.Data, true
}

// fetch performs the HTTP GET with the bounded retry policy.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + "/" + path

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			backoff := baseRetryBackoff << (attempt - 2)
			c.logger.Debug().
				Str("path", path).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("retrying request")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, retryable, err := c.doRequest(ctx, url, path)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// doRequest performs a single GET and classifies the outcome. The
// second return value reports whether the failure is worth retrying.
func (c *Client) doRequest(ctx context.Context, url, path string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, false, &APIError{Status: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response for %s: %w", path, err)
	}
	return body, false, nil
}
