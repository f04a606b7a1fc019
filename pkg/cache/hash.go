package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SolveKeyOpts identifies one solve request for cache keying. Every
// field that influences the search result must appear here: the search
// is deterministic given these inputs, so equal keys imply equal
// results.
type SolveKeyOpts struct {
	Rows, Cols         int
	StartRow, StartCol int
	EndRow, EndCol     int
	MaxIterations      uint32
}

// SolveKey generates the cache key for a solve request.
// The key format is: solve:hash(opts).
func SolveKey(opts SolveKeyOpts) string {
	return hashKey("solve", opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
