package element

import (
	"os"
	"path/filepath"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/pkg/errors"
)

// SizeOf returns the byte size of the file at path, or for a directory the sum
// over every file reachable below it (0 when there are none). It returns -1,
// not an error, when nothing exists at path.
//
// Symbolic links inside a directory are never followed into directories; a link
// to a file counts its target's size and a dangling link counts nothing.
func SizeOf(fsys fs.FileSystem, path string) (int64, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return -1, nil
		}
		return 0, errors.Wrapf(err, "failed to stat %s", path)
	}
	if !info.IsDir() {
		return info.Size(), nil
	}
	return dirSize(fsys, path)
}

func dirSize(fsys fs.FileSystem, dir string) (int64, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var total int64
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := fsys.Lstat(path)
		if err != nil {
			if isNotExist(err) {
				continue
			}
			return 0, errors.Wrapf(err, "failed to stat %s", path)
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Stat(path)
			if err != nil {
				if isNotExist(err) {
					continue
				}
				return 0, errors.Wrapf(err, "failed to resolve link %s", path)
			}
			if target.Mode().IsRegular() {
				total += target.Size()
			}
			continue
		}

		switch {
		case info.IsDir():
			sub, err := dirSize(fsys, path)
			if err != nil {
				return 0, err
			}
			total += sub
		case info.Mode().IsRegular():
			total += info.Size()
		}
	}
	return total, nil
}
