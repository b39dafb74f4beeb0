// Package kv defines the persistent key-value contract used by tick's slots.
package kv

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is a stored value with its metadata, left undecoded.
type Entry struct {
	Key       string
	Value     json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// KV is a persistent key-value store with JSON-serializable values.
// GetRaw on a missing key returns an error wrapping sql.ErrNoRows.
type KV interface {
	GetRaw(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, value any) error
}
