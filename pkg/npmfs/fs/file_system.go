package fs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts the filesystem primitives elements are built on.
// Every query made by an element goes through it; nothing is cached.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(dirname string) ([]os.DirEntry, error)
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	Exists(path string) bool
	Abs(path string) (string, error)
	Join(elem ...string) string
	UserConfigDir() (string, error)
	UserHomeDir() (string, error)
}

// OSFileSystem is the production implementation using the host filesystem
type OSFileSystem struct{}

func NewOSFileSystem() FileSystem {
	return &OSFileSystem{}
}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OSFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (OSFileSystem) ReadDir(dirname string) ([]os.DirEntry, error) {
	return os.ReadDir(dirname)
}

func (OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

func (OSFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Exists reports whether anything, including a dangling symlink, is at path.
func (f OSFileSystem) Exists(path string) bool {
	_, err := f.Lstat(path)
	return err == nil
}

func (OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (OSFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (OSFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
