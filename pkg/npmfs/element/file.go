package element

import (
	"regexp"
	"strings"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/pkg/errors"
)

// File is an element holding a snapshot of its content taken at construction.
// A virtual file has empty content.
type File struct {
	Descriptor
	content string
}

// NewFile validates path as a regular file and reads its content. Existence is
// required unless MustNotExist is passed.
func NewFile(fsys fs.FileSystem, path string, opts ...Option) (*File, error) {
	d, err := Describe(fsys, path, typed(KindFile, opts)...)
	if err != nil {
		return nil, err
	}
	return newFile(d)
}

func newFile(d Descriptor) (*File, error) {
	f := &File{Descriptor: d}

	data, err := d.fsys.ReadFile(d.path)
	if err != nil {
		if isNotExist(err) {
			return f, nil
		}
		return nil, errors.Wrapf(err, "failed to read file %s", d.path)
	}
	f.content = string(data)
	return f, nil
}

func (*File) element() {}

// Content returns the snapshot taken at construction.
func (f *File) Content() string {
	return f.content
}

// Lines splits the snapshot on "\n". Carriage returns are kept.
func (f *File) Lines() []string {
	return strings.Split(f.content, "\n")
}

// Length is the number of "\n" separated segments minus one, which equals the
// line count of a newline-terminated file.
func (f *File) Length() (int, error) {
	return len(f.Lines()) - 1, nil
}

func (f *File) IsEmpty() (bool, error) {
	return len(f.content) == 0, nil
}

// Size reads the current size from disk, -1 if the file is gone.
func (f *File) Size() (int64, error) {
	return SizeOf(f.fsys, f.path)
}

// Read returns the file's current content without touching the snapshot.
func (f *File) Read() (string, error) {
	data, err := f.fsys.ReadFile(f.path)
	if err != nil {
		if isNotExist(err) {
			return "", errors.Wrap(ErrPathDoesNotExist, f.path)
		}
		return "", errors.Wrapf(err, "failed to read file %s", f.path)
	}
	return string(data), nil
}

// Contains reports whether the snapshot contains substr literally.
// Matching is case-insensitive by default.
func (f *File) Contains(substr string, opts ...MatchOption) bool {
	s := newMatchSettings(opts)
	if s.caseSensitive {
		return strings.Contains(f.content, substr)
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(substr)).MatchString(f.content)
}

// Matches reports whether the snapshot matches the regular expression pattern.
// Matching is case-insensitive by default.
func (f *File) Matches(pattern string, opts ...MatchOption) (bool, error) {
	s := newMatchSettings(opts)
	if !s.caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	return re.MatchString(f.content), nil
}
