package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSettings(t *testing.T) {
	db := openTestDB(t)

	value, err := db.GetSetting("last_filter")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, db.SetSetting("last_filter", "active"))
	require.NoError(t, db.SetSetting("last_filter", "completed"))

	value, err = db.GetSetting("last_filter")
	require.NoError(t, err)
	assert.Equal(t, "completed", value)
}

func TestSlot_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	slot := db.Slot("awesome-todos")
	assert.Equal(t, "sqlite:awesome-todos", slot.Name())

	data, err := slot.Read()
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, slot.Write([]byte(`[{"id":"a"}]`)))
	require.NoError(t, slot.Write([]byte(`[]`)))

	data, err = slot.Read()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestSlot_KeysAreIndependent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Slot("one").Write([]byte(`1`)))

	data, err := db.Slot("two").Read()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Slot("k").Write([]byte(`[]`)))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	data, err := db.Slot("k").Read()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "todo"), dir)
}

func TestNew_UsesDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	db, err := New()
	require.NoError(t, err)
	defer db.Close()

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, FileName))
}
