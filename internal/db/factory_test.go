package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for _, typ := range []string{"sqlite", "sqlite3", ""} {
		store, err := NewStore(StoreConfig{Type: typ, ConnectionString: dbPath})
		require.NoError(t, err)
		_, ok := store.(*SQLiteStore)
		assert.True(t, ok, "Expected a SQLiteStore instance for %q", typ)
		store.Close()
	}
}

func TestNewStore_Memory(t *testing.T) {
	store, err := NewStore(StoreConfig{Type: "memory"})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SetEntry("ns", "k", "v"))
	val, err := store.GetEntry("ns", "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestNewStore_Errors(t *testing.T) {
	_, err := NewStore(StoreConfig{Type: "mongodb"})
	assert.Error(t, err, "Expected error for unsupported store type")

	_, err = NewStore(StoreConfig{Type: "postgres"})
	assert.Error(t, err, "Expected error for missing postgres connection string")
}
