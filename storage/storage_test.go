package storage_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmpl/league-api/storage"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	root := t.TempDir()
	local := storage.NewLocalStorage(root)
	ctx := context.Background()

	name := "gmaps_images/ChIJtest0.jpeg"
	assert.False(t, local.Exists(ctx, name))

	require.NoError(t, local.Save(ctx, name, []byte{0xFF, 0xD8}))
	assert.True(t, local.Exists(ctx, name))

	data, err := os.ReadFile(filepath.Join(root, "gmaps_images", "ChIJtest0.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, data)

	require.NoError(t, local.Delete(ctx, name))
	assert.False(t, local.Exists(ctx, name))
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	local := storage.NewLocalStorage(t.TempDir())

	err := local.Delete(context.Background(), "gmaps_images/never-saved.jpeg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLocalStorageSaveCreatesDirectories(t *testing.T) {
	root := t.TempDir()
	local := storage.NewLocalStorage(root)

	require.NoError(t, local.Save(context.Background(), "a/b/c.jpeg", []byte("x")))
	assert.FileExists(t, filepath.Join(root, "a", "b", "c.jpeg"))
}
