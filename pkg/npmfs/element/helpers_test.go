package element

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/stretchr/testify/require"
)

// memTree builds an in-memory filesystem holding files (path -> content) and dirs.
func memTree(t *testing.T, files map[string]string, dirs ...string) fs.FileSystem {
	t.Helper()

	fsys := fs.NewMemFileSystem()
	for _, dir := range dirs {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
	}
	for path, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
	return fsys
}

// diskTree creates files (relative path -> content) and dirs under a fresh temp dir.
func diskTree(t *testing.T, files map[string]string, dirs ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	for path, content := range files {
		full := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}
