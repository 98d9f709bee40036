package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for arbitration-result caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from raw document content. Content-hashed
// keys make duplicate documents inside one export hit the same entry
// regardless of path.
func Key(content []byte) string {
	hash := sha256.Sum256(content)
	return "dataprepper:v1:" + hex.EncodeToString(hash[:])
}
