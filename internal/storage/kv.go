// Package storage is the persistence adapter: a durable local key-value
// store with string values, backed by SQLite. Collections are stored as
// whole JSON documents under well-known keys.
package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// KV wraps a sql.DB connection holding a single key-value table.
type KV struct {
	db *sql.DB
}

// Open opens (or creates) the store at path and runs the migration.
// Pass ":memory:" for an ephemeral store in tests.
func Open(path string) (*KV, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	kv := &KV{db: db}
	if err := kv.migrate(); err != nil {
		return nil, err
	}
	return kv, nil
}

func (k *KV) migrate() error {
	_, err := k.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}

// Get returns the value stored under key. The second return reports whether
// the key was present at all; absence is not an error.
func (k *KV) Get(key string) (string, bool, error) {
	var value string
	err := k.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value. The write is a
// single statement: the durable copy is never partially updated.
func (k *KV) Set(key, value string) error {
	_, err := k.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// Delete removes key. Deleting an absent key is a no-op.
func (k *KV) Delete(key string) error {
	_, err := k.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Close closes the underlying database.
func (k *KV) Close() error {
	return k.db.Close()
}
