package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laydeck/internal/domain"
	"laydeck/internal/store"
)

func TestLabwareStore_MissingFile(t *testing.T) {
	s := store.NewLabwareFileStore()

	props, ok, err := s.LoadLabwareProperties(filepath.Join(t.TempDir(), "absent.rck"), nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.LabwareProperties{}, props)

	props, ok, err = s.LoadLabwareProperties("", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.LabwareProperties{}, props)
}

func TestLabwareStore_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.rck")
	require.NoError(t, os.WriteFile(path, []byte("Rows\x00\x018\x00Columns\x00\x0212\x00"), 0o600))

	props, ok, err := store.NewLabwareFileStore().LoadLabwareProperties(path, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 8, props.Rows)
	assert.Equal(t, 12, props.Columns)
}

func TestLabwareStore_UnreadableFile(t *testing.T) {
	// A directory exists but cannot be read as a file.
	_, ok, err := store.NewLabwareFileStore().LoadLabwareProperties(t.TempDir(), nil)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLayoutStore_Missing(t *testing.T) {
	_, err := store.NewLayoutFileStore().ReadLayout(filepath.Join(t.TempDir(), "deck.lay"))
	assert.ErrorIs(t, err, domain.ErrLayoutUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReportStore_SaveReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deck.md")
	s := store.NewReportFileStore()

	require.NoError(t, s.SaveReport(path, []byte("first")))
	require.NoError(t, s.SaveReport(path, []byte("second")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
