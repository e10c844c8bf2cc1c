// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// package store provides the durable key-value store Rutero keeps its
// session state in. It abstracts the underlying database (SQLite by
// default, MySQL or PostgreSQL for shared setups) behind a small Store
// interface so the rest of the application never sees SQL.
package store // import "github.com/rutero-app/rutero/internal/store"

import "context"

// Reserved keys used by the session layer. The profile entry must never
// outlive the session entry; the session manager clears them together.
const (
	KeySession     = "session"
	KeyUserProfile = "userProfile"
)

// Store is the contract every backend implements. Get reports absence via
// the bool rather than an error so callers can treat "not there yet" as a
// normal state.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}
