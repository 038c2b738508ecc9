package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()

	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	return store
}

func TestSave(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(strings.NewReader("fake image bytes"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	content, err := os.ReadFile(filepath.Join(store.dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))
}

func TestSaveUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(strings.NewReader("not an image"), "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(strings.NewReader("fake image bytes"), "image/jpeg")
	require.NoError(t, err)

	// Handlers pass the stored URL, not the bare file name.
	err = store.Delete("/images/" + name)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(store.dir, name))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeleteMissingFile(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Delete("/images/does-not-exist.png"))
	assert.NoError(t, store.Delete(""))
}

func TestResolve(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(strings.NewReader("fake image bytes"), "image/webp")
	require.NoError(t, err)

	path, err := store.Resolve(name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.dir, name), path)

	_, err = store.Resolve("missing.webp")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestResolveRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Resolve("../../etc/passwd")
	assert.ErrorIs(t, err, ErrImageNotFound)
}
