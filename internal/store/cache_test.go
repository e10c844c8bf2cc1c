// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"errors"
	"testing"
)

// fakeStore is an in-memory Store with per-operation failure injection
// and call counting.
type fakeStore struct {
	entries map[string]string

	getCalls int
	setCalls int
	delCalls int

	failGet bool
	failSet bool
	failDel bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	f.getCalls++
	if f.failGet {
		return "", false, errors.New("get failed")
	}
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	f.setCalls++
	if f.failSet {
		return errors.New("set failed")
	}
	f.entries[key] = value
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.delCalls++
	if f.failDel {
		return errors.New("delete failed")
	}
	delete(f.entries, key)
	return nil
}

func (f *fakeStore) Keys(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(f.entries))
	for k := range f.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

func (f *fakeStore) Close() error { return nil }

func TestCacheLoadsEachKeyOnce(t *testing.T) {
	backend := newFakeStore()
	backend.entries["session"] = "tok"
	c := NewCache(backend)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		v, ok := c.Value(ctx, "session")
		if !ok || v != "tok" {
			t.Fatalf("Value = (%q, %v), want (%q, true)", v, ok, "tok")
		}
	}
	if backend.getCalls != 1 {
		t.Errorf("backend.Get called %d times, want 1", backend.getCalls)
	}
}

func TestCacheAbsentKeyIsCachedToo(t *testing.T) {
	backend := newFakeStore()
	c := NewCache(backend)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if v, ok := c.Value(ctx, "missing"); ok || v != "" {
			t.Fatalf("Value = (%q, %v), want (\"\", false)", v, ok)
		}
	}
	if backend.getCalls != 1 {
		t.Errorf("backend.Get called %d times, want 1", backend.getCalls)
	}
}

func TestCacheSetVisibleDespitePersistFailure(t *testing.T) {
	backend := newFakeStore()
	backend.failSet = true
	c := NewCache(backend)
	ctx := context.Background()

	c.Set(ctx, "session", "tok")

	v, ok := c.Value(ctx, "session")
	if !ok || v != "tok" {
		t.Errorf("Value = (%q, %v), want (%q, true)", v, ok, "tok")
	}
	if backend.setCalls != 1 {
		t.Errorf("backend.Set called %d times, want 1", backend.setCalls)
	}
	// The write never reached the backend but the reader still sees it.
	if _, present := backend.entries["session"]; present {
		t.Error("backend unexpectedly holds the value")
	}
}

func TestCacheLoadFailureDegradesToUnknown(t *testing.T) {
	backend := newFakeStore()
	backend.entries["session"] = "tok"
	backend.failGet = true
	c := NewCache(backend)
	ctx := context.Background()

	if v, ok := c.Value(ctx, "session"); ok || v != "" {
		t.Errorf("Value = (%q, %v), want (\"\", false)", v, ok)
	}

	// The failed load is not cached; a later call retries the backend.
	backend.failGet = false
	if v, ok := c.Value(ctx, "session"); !ok || v != "tok" {
		t.Errorf("Value after recovery = (%q, %v), want (%q, true)", v, ok, "tok")
	}
}

func TestCacheClear(t *testing.T) {
	backend := newFakeStore()
	backend.entries["userProfile"] = "{}"
	c := NewCache(backend)
	ctx := context.Background()

	c.Clear(ctx, "userProfile")

	if v, ok := c.Value(ctx, "userProfile"); ok || v != "" {
		t.Errorf("Value = (%q, %v), want (\"\", false)", v, ok)
	}
	if _, present := backend.entries["userProfile"]; present {
		t.Error("backend still holds the entry after Clear")
	}
	// Clear marks the key as loaded; no backend read happens afterwards.
	if backend.getCalls != 0 {
		t.Errorf("backend.Get called %d times, want 0", backend.getCalls)
	}
}

func TestCacheLoading(t *testing.T) {
	c := NewCache(newFakeStore())

	if !c.Loading("session") {
		t.Error("Loading = false before first read, want true")
	}
	c.Value(context.Background(), "session")
	if c.Loading("session") {
		t.Error("Loading = true after first read, want false")
	}
}
