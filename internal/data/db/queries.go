package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB the queries use.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries holds the statements used by the stores.
type Queries struct {
	db DBTX
}

// New returns a query set bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// KvStore is a row of the kv_store table.
type KvStore struct {
	Key       string
	Value     []byte
	CreatedAt int64
	UpdatedAt int64
}

const kvGet = `SELECT key, value, created_at, updated_at FROM kv_store WHERE key = ?`

// KVGet returns the row for key, or sql.ErrNoRows.
func (q *Queries) KVGet(ctx context.Context, key string) (KvStore, error) {
	row := q.db.QueryRowContext(ctx, kvGet, key)
	var i KvStore
	err := row.Scan(&i.Key, &i.Value, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const kvSet = `INSERT INTO kv_store (key, value, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// KVSetParams are the arguments to KVSet.
type KVSetParams struct {
	Key       string
	Value     []byte
	CreatedAt int64
	UpdatedAt int64
}

// KVSet inserts or replaces the value for a key, preserving created_at.
func (q *Queries) KVSet(ctx context.Context, arg KVSetParams) error {
	_, err := q.db.ExecContext(ctx, kvSet, arg.Key, arg.Value, arg.CreatedAt, arg.UpdatedAt)
	return err
}
