package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_KV(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	q := database.Queries()

	_, err := q.KVGet(ctx, "todo-tasks")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, q.KVSet(ctx, KVSetParams{Key: "todo-tasks", Value: []byte("[]"), CreatedAt: 10, UpdatedAt: 10}))
	require.NoError(t, q.KVSet(ctx, KVSetParams{Key: "todo-tasks", Value: []byte(`[{"id":1}]`), CreatedAt: 20, UpdatedAt: 20}))

	row, err := q.KVGet(ctx, "todo-tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), row.Value)
	assert.Equal(t, int64(10), row.CreatedAt, "upsert keeps the original created_at")
	assert.Equal(t, int64(20), row.UpdatedAt)
}

func TestQueries_KVKeysAreIndependent(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	q := database.Queries()

	require.NoError(t, q.KVSet(ctx, KVSetParams{Key: "home", Value: []byte("[1]"), CreatedAt: 1, UpdatedAt: 1}))
	require.NoError(t, q.KVSet(ctx, KVSetParams{Key: "work", Value: []byte("[2]"), CreatedAt: 2, UpdatedAt: 2}))

	home, err := q.KVGet(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, []byte("[1]"), home.Value)

	work, err := q.KVGet(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, []byte("[2]"), work.Value)
}
