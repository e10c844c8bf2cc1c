// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"fmt"
	"testing"
)

var storeCounter int

// newTestStore opens a fresh shared in-memory SQLite store. Each call
// uses a distinct database name so tests stay isolated.
func newTestStore(t *testing.T) *BunStore {
	t.Helper()
	storeCounter++
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", storeCounter)
	s, err := NewStoreFromDSN("sqlite", dsn)
	if err != nil {
		t.Fatalf("NewStoreFromDSN: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreSetGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "greeting", "hola"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, ok, err := s.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != "hola" {
		t.Errorf("Get = (%q, %v), want (%q, true)", v, ok, "hola")
	}
}

func TestStoreGetAbsent(t *testing.T) {
	s := newTestStore(t)

	v, ok, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "session", "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "session", "second"); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}

	v, ok, err := s.Get(ctx, "session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != "second" {
		t.Errorf("Get = (%q, %v), want (%q, true)", v, ok, "second")
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "session", "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete(ctx, "session"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, ok, err := s.Get(ctx, "session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("entry still present after Delete")
	}

	// Deleting an absent key is fine.
	if err := s.Delete(ctx, "session"); err != nil {
		t.Errorf("Delete (absent): %v", err)
	}
}

func TestStoreKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, k := range []string{"b", "a", "c"} {
		if err := s.Set(ctx, k, "v"); err != nil {
			t.Fatalf("Set %q: %v", k, err)
		}
	}

	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
