package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestEmailUniqueConstraint(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db))

	_, err = db.Exec("INSERT INTO users(id, email, full_name, password_hash) VALUES(?, ?, ?, ?)",
		"id-1", "a@x.com", "A", "hash")
	require.NoError(t, err)

	// The unique index is the authoritative guard against duplicate accounts
	_, err = db.Exec("INSERT INTO users(id, email, full_name, password_hash) VALUES(?, ?, ?, ?)",
		"id-2", "a@x.com", "B", "hash")
	assert.Error(t, err)
}
