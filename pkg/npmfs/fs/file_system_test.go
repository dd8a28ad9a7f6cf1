package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackends_ReadDirSorted(t *testing.T) {
	root := t.TempDir()
	mem := NewMemFileSystem()
	require.NoError(t, mem.MkdirAll(root, 0755))

	backends := map[string]FileSystem{
		"os":  NewOSFileSystem(),
		"mem": mem,
	}

	for name, fsys := range backends {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(root, name)
			require.NoError(t, fsys.MkdirAll(filepath.Join(dir, "b-dir"), 0755))
			require.NoError(t, fsys.WriteFile(filepath.Join(dir, "c.txt"), []byte("c"), 0644))
			require.NoError(t, fsys.WriteFile(filepath.Join(dir, "a.txt"), []byte("aa"), 0644))

			entries, err := fsys.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 3)
			assert.Equal(t, "a.txt", entries[0].Name())
			assert.Equal(t, "b-dir", entries[1].Name())
			assert.True(t, entries[1].IsDir())
			assert.Equal(t, "c.txt", entries[2].Name())

			info, err := fsys.Stat(filepath.Join(dir, "a.txt"))
			require.NoError(t, err)
			assert.Equal(t, int64(2), info.Size())

			data, err := fsys.ReadFile(filepath.Join(dir, "c.txt"))
			require.NoError(t, err)
			assert.Equal(t, "c", string(data))

			assert.True(t, fsys.Exists(dir))
			require.NoError(t, fsys.RemoveAll(dir))
			assert.False(t, fsys.Exists(dir))

			_, err = fsys.Stat(dir)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestAferoFileSystem_Abs(t *testing.T) {
	fsys := NewMemFileSystem()

	abs, err := fsys.Abs("pkg/src/../lib")
	require.NoError(t, err)
	assert.Equal(t, "/pkg/lib", abs)

	abs, err = fsys.Abs("/pkg/./src/")
	require.NoError(t, err)
	assert.Equal(t, "/pkg/src", abs)
}

func TestOSFileSystem_ExistsSeesDanglingLinks(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))

	fsys := NewOSFileSystem()
	assert.True(t, fsys.Exists(link))

	_, err := fsys.Stat(link)
	assert.ErrorIs(t, err, os.ErrNotExist)

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestOSFileSystem_AbsIsAbsolute(t *testing.T) {
	abs, err := NewOSFileSystem().Abs("relative/path")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}
