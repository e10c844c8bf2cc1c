// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the bun-backed implementation of the Store interface.
// The same implementation serves all three supported backends; only the
// driver and dialect differ.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	// SQL drivers for the shared-database backends.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/rutero-app/rutero/internal/logging"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// Entry maps the kv_entries table.
type Entry struct {
	bun.BaseModel `bun:"table:kv_entries"`

	Name      string    `bun:"name,pk"`
	Value     string    `bun:"value"`
	UpdatedAt time.Time `bun:"updated_at"`
}

// BunStore is the bun-backed implementation of the Store interface.
type BunStore struct {
	db     *sql.DB
	bun    *bun.DB
	dbType string
}

// NewStoreFromDSN opens the key-value store for the given backend type
// ("sqlite", "mysql" or "postgres") and ensures the schema exists.
func NewStoreFromDSN(dbType, dsn string) (*BunStore, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
	if dbType == "postgres" {
		driverName = "pgx"
	}
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	const (
		defaultMaxOpenConns    = 5
		defaultMaxIdleConns    = 5
		defaultConnMaxLifetime = 5 * time.Minute
	)

	maxOpen := defaultMaxOpenConns
	if v := os.Getenv("RUTERO_DB_MAX_OPEN_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			maxOpen = n
		}
	}
	maxIdle := defaultMaxIdleConns
	if v := os.Getenv("RUTERO_DB_MAX_IDLE_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			maxIdle = n
		}
	}

	// For in-memory SQLite databases, force a single open connection; each
	// SQLite connection otherwise gets its own private in-memory database
	// and the schema becomes invisible across connections. Tests rely on this.
	if dbType == "sqlite" && isMemoryDSN(dsn) {
		maxOpen = 1
		maxIdle = 1
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	bunDB := createBunDB(sqlDB, dbType)

	s := &BunStore{db: sqlDB, bun: bunDB, dbType: dbType}
	if err := s.ensureSchema(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize store schema: %w", err)
	}
	logging.Debugf("store: opened %s backend", dbType)
	return s, nil
}

// isMemoryDSN reports whether the sqlite DSN refers to an in-memory database.
func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || dsn == "file::memory:"
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// ensureSchema creates the kv_entries table when it does not exist yet.
func (s *BunStore) ensureSchema(ctx context.Context) error {
	_, err := s.bun.NewCreateTable().
		Model((*Entry)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Get returns the value stored under key, with false when absent.
func (s *BunStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	err := s.bun.NewSelect().Model(&e).Where("name = ?", key).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store get %q: %w", key, err)
	}
	return e.Value, true, nil
}

// Set persists value under key, replacing any previous value.
func (s *BunStore) Set(ctx context.Context, key, value string) error {
	e := &Entry{Name: key, Value: value, UpdatedAt: time.Now().UTC()}
	q := s.bun.NewInsert().Model(e)
	// MySQL has no ON CONFLICT clause; the other two share the SQLite form.
	if s.dbType == "mysql" {
		q = q.On("DUPLICATE KEY UPDATE").
			Set("value = VALUES(value)").
			Set("updated_at = VALUES(updated_at)")
	} else {
		q = q.On("CONFLICT (name) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at")
	}
	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("store set %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry under key. Deleting an absent key is not an error.
func (s *BunStore) Delete(ctx context.Context, key string) error {
	_, err := s.bun.NewDelete().Model((*Entry)(nil)).Where("name = ?", key).Exec(ctx)
	if err != nil {
		return fmt.Errorf("store delete %q: %w", key, err)
	}
	return nil
}

// Keys lists all stored keys.
func (s *BunStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.bun.NewSelect().
		Model((*Entry)(nil)).
		Column("name").
		Order("name ASC").
		Scan(ctx, &keys)
	if err != nil {
		return nil, fmt.Errorf("store keys: %w", err)
	}
	return keys, nil
}

// Close releases the underlying database handles.
func (s *BunStore) Close() error {
	return s.bun.Close()
}
