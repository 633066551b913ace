// Package sink persists generated text to destination files, skipping writes
// whose content has not changed since the last sync.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Status reports what a write did to its destination.
type Status string

const (
	// StatusCreated means the destination did not exist and was written.
	StatusCreated Status = "created"
	// StatusChanged means the destination existed with different content and was rewritten.
	StatusChanged Status = "changed"
	// StatusUnchanged means the destination already held identical content; nothing was written.
	StatusUnchanged Status = "unchanged"
)

// FingerprintCache maps destination paths to the fingerprint of their last
// known content. It is owned by the caller and passed to the Writer, so a
// long-lived process (watch mode) carries fingerprints across sync runs while
// a one-shot run starts empty and falls back to hashing the existing files.
type FingerprintCache struct {
	mu      sync.Mutex
	entries map[string]uint64
}

// NewFingerprintCache returns an empty cache.
func NewFingerprintCache() *FingerprintCache {
	return &FingerprintCache{entries: make(map[string]uint64)}
}

func (c *FingerprintCache) get(dest string) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fp, ok := c.entries[dest]
	return fp, ok
}

func (c *FingerprintCache) set(dest string, fp uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[dest] = fp
}

// Writer writes generated documents to files, using content fingerprints to
// skip rewrites of unchanged destinations. Writes to distinct destinations are
// independent; one failing destination does not affect the others.
type Writer struct {
	cache *FingerprintCache
}

// NewWriter creates a Writer backed by the given cache. A nil cache gets a
// fresh private one.
func NewWriter(cache *FingerprintCache) *Writer {
	if cache == nil {
		cache = NewFingerprintCache()
	}
	return &Writer{cache: cache}
}

// Write persists content to dest, creating parent directories as needed. When
// the destination's fingerprint (cached, or computed from the existing file on
// first contact) matches the new content and the file still exists, nothing is
// written and StatusUnchanged is returned.
func (w *Writer) Write(dest string, content []byte) (Status, error) {
	fp := xxhash.Sum64(content)

	prev, known := w.cache.get(dest)
	existed := known
	if !known {
		if data, err := os.ReadFile(dest); err == nil {
			prev = xxhash.Sum64(data)
			known = true
			existed = true
		}
	}

	if known && prev == fp {
		// The cache can outlive the file it describes (a destination removed
		// externally between watch runs); only skip when the file is present.
		if _, err := os.Stat(dest); err == nil {
			return StatusUnchanged, nil
		}
		existed = false
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return "", fmt.Errorf("write %q: %w", dest, err)
	}

	w.cache.set(dest, fp)
	if existed {
		return StatusChanged, nil
	}
	return StatusCreated, nil
}
