package redis

import "strings"

const (
	// KeyPrefixSearch is the prefix for cached user-search results.
	KeyPrefixSearch = "covet:search:"
)

// SearchKey returns the cache key for one caller's query. Queries are
// case-insensitive, so the key is normalized to lower case.
func SearchKey(callerID, query string) string {
	return KeyPrefixSearch + callerID + ":" + strings.ToLower(query)
}
