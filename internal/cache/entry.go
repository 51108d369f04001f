package cache

import (
	"encoding/json"
	"time"
)

// Entry represents a single cached raw API response. Entries carry no
// expiry: presence in the store is validity. The creation timestamp is
// kept for the cache maintenance surface only.
type Entry struct {
	// Key is the cache key the entry was stored under.
	Key string `json:"key"`

	// Data is the raw response body.
	Data json.RawMessage `json:"data"`

	// CreatedAt is the timestamp when the entry was written.
	CreatedAt time.Time `json:"created_at"`
}

// NewEntry creates a cache entry stamped with the current time.
func NewEntry(key string, data json.RawMessage) *Entry {
	return &Entry{
		Key:       key,
		Data:      data,
		CreatedAt: time.Now(),
	}
}

// Age returns the duration since the entry was written.
func (e *Entry) Age() time.Duration {
	return time.Since(e.CreatedAt)
}
