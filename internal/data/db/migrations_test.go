package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(t.TempDir(), DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func openRawConn(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), FileName)
	conn, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", dbPath))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestMigrateUp_FreshDB(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	rows, err := database.conn.QueryContext(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var versions []int
	for rows.Next() {
		var v int
		require.NoError(t, rows.Scan(&v))
		versions = append(versions, v)
	}
	require.NoError(t, rows.Err())

	migrations, err := loadMigrations()
	require.NoError(t, err)

	require.Len(t, versions, len(migrations))
	for i, m := range migrations {
		assert.Equal(t, m.Version, versions[i])
	}

	_, err = database.conn.ExecContext(ctx, "SELECT 1 FROM kv_store LIMIT 0")
	require.NoError(t, err, "kv_store table should exist")

	var indexes int
	err = database.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name='idx_kv_store_updated_at'",
	).Scan(&indexes)
	require.NoError(t, err)
	assert.Equal(t, 1, indexes)
}

func TestMigrateUp_Idempotent(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	_, err := database.conn.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, created_at, updated_at)
		VALUES ('todo-tasks', '[]', 1, 1)
	`)
	require.NoError(t, err)

	require.NoError(t, migrateUp(ctx, database.conn), "second migrateUp should be a no-op")

	var count int
	require.NoError(t, database.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv_store").Scan(&count))
	assert.Equal(t, 1, count, "existing rows survive")
}

func TestMigrateUp_ResumesPartialSchema(t *testing.T) {
	conn := openRawConn(t)
	ctx := context.Background()

	m, err := newMigrator(ctx, conn)
	require.NoError(t, err)
	require.NoError(t, m.apply(ctx, m.migrations[0]))

	version, err := schemaVersion(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, m.migrations[0].Version, version)

	require.NoError(t, migrateUp(ctx, conn))

	version, err = schemaVersion(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, m.migrations[len(m.migrations)-1].Version, version)
}

func TestSchemaVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("unmigrated", func(t *testing.T) {
		version, err := schemaVersion(ctx, openRawConn(t))
		require.NoError(t, err)
		assert.Equal(t, 0, version)
	})

	t.Run("migrated", func(t *testing.T) {
		database := openTestDB(t)

		migrations, err := loadMigrations()
		require.NoError(t, err)

		version, err := database.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migrations[len(migrations)-1].Version, version)
	})
}

func TestLoadMigrations_Valid(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i := 1; i < len(migrations); i++ {
		assert.Greater(t, migrations[i].Version, migrations[i-1].Version,
			"migrations should be in ascending version order")
	}

	for _, m := range migrations {
		assert.NotEmpty(t, m.SQL, "migration %d SQL should not be empty", m.Version)
		assert.NotEmpty(t, m.Name, "migration %d name should not be empty", m.Version)
	}
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		filename    string
		wantVersion int
		wantName    string
		wantErr     bool
	}{
		{"0001_kv_store.sql", 1, "kv_store", false},
		{"0002_kv_store_updated_at.sql", 2, "kv_store_updated_at", false},
		{"0100_big_version.sql", 100, "big_version", false},
		{"bad.txt", 0, "", true},
		{"0001.sql", 0, "", true},
		{"0000_zero.sql", 0, "", true},
		{"-1_negative.sql", 0, "", true},
		{"abc_notnumber.sql", 0, "", true},
		{"0001_.sql", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			version, name, err := parseFilename(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, version)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
