// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"bytes"
	"context"
	"testing"
)

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newFakeStore()
	src.entries["session"] = "tok"
	src.entries["userProfile"] = `{"id":7}`

	var buf bytes.Buffer
	if err := Export(ctx, src, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := newFakeStore()
	dst.entries["session"] = "stale"
	if err := Import(ctx, dst, &buf); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if got := dst.entries["session"]; got != "tok" {
		t.Errorf("session = %q, want %q", got, "tok")
	}
	if got := dst.entries["userProfile"]; got != `{"id":7}` {
		t.Errorf("userProfile = %q, want %q", got, `{"id":7}`)
	}
}

func TestBackupImportGarbage(t *testing.T) {
	dst := newFakeStore()
	err := Import(context.Background(), dst, bytes.NewReader([]byte("not a backup")))
	if err == nil {
		t.Fatal("Import accepted garbage input")
	}
	if len(dst.entries) != 0 {
		t.Errorf("store modified by failed import: %v", dst.entries)
	}
}

func TestBackupExportSQLiteStore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if err := s.Set(ctx, "session", "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var buf bytes.Buffer
	if err := Export(ctx, s, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := newFakeStore()
	if err := Import(ctx, dst, &buf); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got := dst.entries["session"]; got != "tok" {
		t.Errorf("session = %q, want %q", got, "tok")
	}
}
