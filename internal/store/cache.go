// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"sync"

	"github.com/rutero-app/rutero/internal/logging"
)

// Cache is a process-wide read-through cache over a Store. Each key is
// loaded from the backing store at most once; afterwards every reader
// observes the same in-memory value. Writes update memory synchronously
// and persist best-effort: storage failures are logged, never returned,
// so callers can treat persistence as fire-and-forget.
type Cache struct {
	backend Store

	mu     sync.RWMutex
	values map[string]string
	loaded map[string]bool
}

// NewCache wraps backend in a read-through cache.
func NewCache(backend Store) *Cache {
	return &Cache{
		backend: backend,
		values:  make(map[string]string),
		loaded:  make(map[string]bool),
	}
}

// Value returns the current value for key and whether one is present.
// The first call for a key performs the underlying load; a load failure
// degrades to "value unknown".
func (c *Cache) Value(ctx context.Context, key string) (string, bool) {
	c.mu.RLock()
	if c.loaded[key] {
		v, ok := c.values[key]
		c.mu.RUnlock()
		return v, ok
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have loaded the key while we upgraded the lock.
	if c.loaded[key] {
		v, ok := c.values[key]
		return v, ok
	}

	v, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		logging.Errorf("store: failed to load %q: %v", key, err)
		return "", false
	}
	c.loaded[key] = true
	if ok {
		c.values[key] = v
	}
	return v, ok
}

// Loading reports whether the initial load for key is still pending.
func (c *Cache) Loading(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.loaded[key]
}

// Set stores value under key. The in-memory value is visible to all
// readers before Set returns; the durable write happens inline and its
// failure is only logged.
func (c *Cache) Set(ctx context.Context, key, value string) {
	c.mu.Lock()
	c.values[key] = value
	c.loaded[key] = true
	c.mu.Unlock()

	if err := c.backend.Set(ctx, key, value); err != nil {
		logging.Errorf("store: failed to persist %q: %v", key, err)
	}
}

// Clear removes key from memory and from the backing store.
func (c *Cache) Clear(ctx context.Context, key string) {
	c.mu.Lock()
	delete(c.values, key)
	c.loaded[key] = true
	c.mu.Unlock()

	if err := c.backend.Delete(ctx, key); err != nil {
		logging.Errorf("store: failed to delete %q: %v", key, err)
	}
}
