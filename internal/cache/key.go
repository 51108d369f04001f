package cache

import "strings"

// Key derives a stable, filesystem-safe cache key from the identity of a
// request. Parts are lowercased, trimmed, and joined with underscores;
// path-significant characters are replaced so the key maps directly to a
// single file name. Equal requests always yield equal keys.
func Key(parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		normalized = append(normalized, sanitizeKey(part))
	}
	return strings.Join(normalized, "_")
}
