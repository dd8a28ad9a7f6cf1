package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// AferoFileSystem adapts an afero.Fs, typically an in-memory one, to FileSystem.
type AferoFileSystem struct {
	fs        afero.Fs
	configDir string
	homeDir   string
}

// NewAferoFileSystem wraps backing. User directories resolve under /home/user.
func NewAferoFileSystem(backing afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{
		fs:        backing,
		configDir: "/home/user/.config",
		homeDir:   "/home/user",
	}
}

// NewMemFileSystem returns a FileSystem backed by afero's in-memory filesystem.
func NewMemFileSystem() *AferoFileSystem {
	return NewAferoFileSystem(afero.NewMemMapFs())
}

func (a *AferoFileSystem) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

// Lstat falls back to Stat when the backing filesystem has no notion of links.
func (a *AferoFileSystem) Lstat(name string) (fs.FileInfo, error) {
	if l, ok := a.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *AferoFileSystem) ReadDir(dirname string) ([]os.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, dirname)
	if err != nil {
		return nil, err
	}
	entries := make([]os.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (a *AferoFileSystem) ReadFile(filename string) ([]byte, error) {
	return afero.ReadFile(a.fs, filename)
}

func (a *AferoFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, filename, data, perm)
}

func (a *AferoFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *AferoFileSystem) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}

func (a *AferoFileSystem) Exists(path string) bool {
	_, err := a.Lstat(path)
	return err == nil
}

// Abs resolves relative paths against the filesystem root.
func (a *AferoFileSystem) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(string(filepath.Separator), path), nil
}

func (a *AferoFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (a *AferoFileSystem) UserConfigDir() (string, error) {
	return a.configDir, nil
}

func (a *AferoFileSystem) UserHomeDir() (string, error) {
	return a.homeDir, nil
}
