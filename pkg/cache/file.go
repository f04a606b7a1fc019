package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists solve results as JSON files under a directory,
// one file per request key, so CLI runs reuse earlier searches without
// any server infrastructure. Files are sharded into subdirectories by
// key hash to keep directory listings small.
type FileCache struct {
	dir string
}

// NewFileCache opens a file cache rooted at dir, creating the
// directory if it does not exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk shape of one cached solve. The result
// payload stays raw JSON so entries remain inspectable with plain
// tooling; SavedAt records when the search actually ran.
type fileEntry struct {
	Result    json.RawMessage `json:"result"`
	SavedAt   time.Time       `json:"saved_at"`
	ExpiresAt time.Time       `json:"expires_at,omitempty"`
}

// expired reports whether the entry has outlived its TTL. A zero
// ExpiresAt means the entry never expires.
func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get returns the cached solve result for key. Expired and unreadable
// entries are removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path := c.path(key)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Result, true, nil
}

// Set stores a solve result under key. A non-positive ttl keeps the
// entry indefinitely, which is safe because the search is
// deterministic in its request.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now()
	entry := fileEntry{Result: data, SavedAt: now}
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl)
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0644)
}

// Delete removes the entry for key, if any.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op: entries live on disk, nothing is held open.
func (c *FileCache) Close() error {
	return nil
}

// path maps a cache key to its file, sharding by the first hash byte.
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h+".json")
}

var _ Cache = (*FileCache)(nil)
