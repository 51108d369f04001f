// Package cache provides file-based caching of raw PokéAPI responses.
// One JSON file per key, written atomically via temp-file rename, with
// no expiry: a present file is a valid entry.
package cache
