// Package cache stores fetched payload bodies so repeated extractions of the
// same source skip the network.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory and disk layers.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a payload source URL. The version segment
// invalidates old entries when the cached format changes.
func Key(source string) string {
	hash := sha256.Sum256([]byte(source))
	return "creatorlens:v1:" + hex.EncodeToString(hash[:])
}
