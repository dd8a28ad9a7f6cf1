package element

import (
	"os"
	"path/filepath"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/pkg/errors"
)

// Directory is an element whose queries list the directory live on every call.
type Directory struct {
	Descriptor
}

// NewDirectory validates path as a directory. Existence is required unless
// MustNotExist is passed.
func NewDirectory(fsys fs.FileSystem, path string, opts ...Option) (*Directory, error) {
	d, err := Describe(fsys, path, typed(KindDirectory, opts)...)
	if err != nil {
		return nil, err
	}
	return &Directory{Descriptor: d}, nil
}

func (*Directory) element() {}

// Listing holds entry names and absolute paths in walk order. Names of entries
// below the immediate children are relative to the listed directory. Kinds
// resolve symlinks to their target's kind.
type Listing struct {
	Names []string
	Paths []string
	Kinds []Kind
}

func (l Listing) Count() int {
	return len(l.Names)
}

type listSettings struct {
	recursive bool
}

// ListOption tunes a directory listing.
type ListOption func(*listSettings)

// Recursive walks every subdirectory depth first. The listed directory itself
// never appears in the result.
func Recursive() ListOption {
	return func(s *listSettings) { s.recursive = true }
}

// Entries lists the entries selected by sel.
func (d *Directory) Entries(sel Selector, opts ...ListOption) (Listing, error) {
	var s listSettings
	for _, opt := range opts {
		opt(&s)
	}

	var listing Listing
	if err := d.walk(d.path, "", sel, s.recursive, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

// Files returns the names of the immediate file children.
func (d *Directory) Files(opts ...ListOption) ([]string, error) {
	listing, err := d.Entries(Files, opts...)
	return listing.Names, err
}

// Directories returns the names of the immediate subdirectories.
func (d *Directory) Directories(opts ...ListOption) ([]string, error) {
	listing, err := d.Entries(Directories, opts...)
	return listing.Names, err
}

// EntryNames returns the names of immediate files and subdirectories.
func (d *Directory) EntryNames(opts ...ListOption) ([]string, error) {
	listing, err := d.Entries(Both, opts...)
	return listing.Names, err
}

// Contains reports whether a file or directory entry matches name, either by
// its name or by its absolute path. Matching is case-insensitive by default.
func (d *Directory) Contains(name string, opts ...MatchOption) (bool, error) {
	return d.contains(Both, name, opts)
}

func (d *Directory) ContainsFile(name string, opts ...MatchOption) (bool, error) {
	return d.contains(Files, name, opts)
}

func (d *Directory) ContainsDirectory(name string, opts ...MatchOption) (bool, error) {
	return d.contains(Directories, name, opts)
}

func (d *Directory) contains(sel Selector, name string, opts []MatchOption) (bool, error) {
	s := newMatchSettings(opts)

	var listOpts []ListOption
	if s.recursive {
		listOpts = append(listOpts, Recursive())
	}
	listing, err := d.Entries(sel, listOpts...)
	if err != nil {
		return false, err
	}

	m := newNameMatcher(s)
	for i := range listing.Names {
		if m.equal(name, listing.Names[i]) || m.equal(name, listing.Paths[i]) {
			return true, nil
		}
	}
	return false, nil
}

// Length returns the number of immediate entries of any kind.
func (d *Directory) Length() (int, error) {
	entries, err := d.readDir(d.path)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (d *Directory) IsEmpty() (bool, error) {
	n, err := d.Length()
	return n == 0, err
}

// Size returns the summed size of every file below the directory, or -1 if
// the directory is gone.
func (d *Directory) Size() (int64, error) {
	return SizeOf(d.fsys, d.path)
}

func (d *Directory) readDir(dir string) ([]os.DirEntry, error) {
	entries, err := d.fsys.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			return nil, errors.Wrap(ErrPathDoesNotExist, dir)
		}
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}
	return entries, nil
}

// walk appends a subdirectory's own entry after its contents.
func (d *Directory) walk(dir, rel string, sel Selector, recursive bool, listing *Listing) error {
	entries, err := d.readDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		name := filepath.Join(rel, entry.Name())

		kind, link, err := d.entryKind(path)
		if err != nil {
			return err
		}

		if kind == KindDirectory && recursive && !link {
			if err := d.walk(path, name, sel, recursive, listing); err != nil {
				return err
			}
		}

		if sel.includes(kind) {
			listing.Names = append(listing.Names, name)
			listing.Paths = append(listing.Paths, path)
			listing.Kinds = append(listing.Kinds, kind)
		}
	}
	return nil
}

// entryKind classifies path, resolving symlinks to their target's kind.
// Dangling links classify as KindOther.
func (d *Directory) entryKind(path string) (Kind, bool, error) {
	info, err := d.fsys.Lstat(path)
	if err != nil {
		if isNotExist(err) {
			return KindOther, false, nil
		}
		return KindOther, false, errors.Wrapf(err, "failed to stat %s", path)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return kindOf(info), false, nil
	}

	target, err := d.fsys.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return KindOther, true, nil
		}
		return KindOther, true, errors.Wrapf(err, "failed to resolve link %s", path)
	}
	return kindOf(target), true, nil
}
