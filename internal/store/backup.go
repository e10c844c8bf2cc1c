// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/rutero-app/rutero/util/mapst"
)

// BackupData is the on-disk shape of a store dump: a zstd-compressed JSON
// document carrying every entry plus the time it was taken.
type BackupData struct {
	TakenAt time.Time         `json:"taken_at"`
	Entries map[string]string `json:"entries"`
}

// Export writes a compressed dump of every entry in s to w. The JSON is
// streamed through the zstd writer rather than buffered.
func Export(ctx context.Context, s Store, w io.Writer) error {
	keys, err := s.Keys(ctx)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	data := BackupData{TakenAt: time.Now().UTC(), Entries: make(map[string]string, len(keys))}
	for _, k := range keys {
		v, ok, err := s.Get(ctx, k)
		if err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		if ok {
			data.Entries[k] = v
		}
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}

	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	return zw.Close()
}

// Import reads a dump produced by Export and writes every entry into s,
// overwriting entries that already exist.
func Import(ctx context.Context, s Store, r io.Reader) error {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var data BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return fmt.Errorf("could not decode backup: %w", err)
	}

	return mapst.Eachx(data.Entries, func(k, v string) error {
		if err := s.Set(ctx, k, v); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		return nil
	})
}
