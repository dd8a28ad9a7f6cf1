// Package element models files and directories on a FileSystem as validated,
// path-addressed handles. Construction checks the declared expectations against
// the live filesystem once; every query afterwards reads the filesystem again.
package element

import (
	"path/filepath"
	"strings"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/pkg/errors"
)

// Element is implemented by *File, *JSONFile and *Directory only.
type Element interface {
	Path() string
	Name() string
	Parent() string
	Kind() Kind
	Exists() bool
	Length() (int, error)
	IsEmpty() (bool, error)
	Size() (int64, error)
	String() string

	element()
}

type settings struct {
	exists *bool
	kind   Kind
}

// Option declares an expectation checked when an element is constructed.
type Option func(*settings)

// MustExist requires something to exist at the path.
func MustExist() Option {
	return func(s *settings) {
		exists := true
		s.exists = &exists
	}
}

// MustNotExist requires the path to be free, producing a virtual element.
func MustNotExist() Option {
	return func(s *settings) {
		exists := false
		s.exists = &exists
	}
}

// OfKind declares the element kind instead of inferring it from disk.
func OfKind(kind Kind) Option {
	return func(s *settings) { s.kind = kind }
}

// Descriptor is the frozen result of validating a path.
type Descriptor struct {
	fsys   fs.FileSystem
	path   string
	name   string
	parent string
	kind   Kind
}

// Describe validates path against the declared options and the live filesystem.
func Describe(fsys fs.FileSystem, path string, opts ...Option) (Descriptor, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if strings.TrimSpace(path) == "" {
		return Descriptor{}, ErrBlankPath
	}
	if s.exists == nil && s.kind == KindOther {
		return Descriptor{}, errors.Wrap(ErrMissingStatus, path)
	}

	abs, err := fsys.Abs(path)
	if err != nil {
		return Descriptor{}, errors.Wrapf(err, "failed to resolve path %s", path)
	}

	info, err := fsys.Stat(abs)
	present := err == nil
	if err != nil && !isNotExist(err) {
		return Descriptor{}, errors.Wrapf(err, "failed to stat %s", abs)
	}

	if s.exists != nil {
		if *s.exists && !present {
			return Descriptor{}, errors.Wrap(ErrPathDoesNotExist, abs)
		}
		if !*s.exists && fsys.Exists(abs) {
			return Descriptor{}, errors.Wrap(ErrPathExists, abs)
		}
	}

	kind := s.kind
	if present {
		actual := kindOf(info)
		if kind != KindOther && actual != kind {
			return Descriptor{}, errors.Wrapf(ErrTypeMismatch, "%s is a %s, expected a %s", abs, actual, kind)
		}
		kind = actual
	}

	return Descriptor{
		fsys:   fsys,
		path:   abs,
		name:   filepath.Base(abs),
		parent: filepath.Dir(abs),
		kind:   kind,
	}, nil
}

func (d Descriptor) Path() string { return d.path }

func (d Descriptor) Name() string { return d.name }

func (d Descriptor) Parent() string { return d.parent }

func (d Descriptor) Kind() Kind { return d.kind }

func (d Descriptor) String() string { return d.path }

// Exists reports whether an object of the element's kind is at the path right now.
func (d Descriptor) Exists() bool {
	info, err := d.fsys.Stat(d.path)
	if err != nil {
		return false
	}
	return d.kind == KindOther || kindOf(info) == d.kind
}

// Open validates path and returns the matching element variant.
func Open(fsys fs.FileSystem, path string, opts ...Option) (Element, error) {
	d, err := Describe(fsys, path, opts...)
	if err != nil {
		return nil, err
	}

	switch d.kind {
	case KindDirectory:
		return &Directory{Descriptor: d}, nil
	case KindFile:
		return newFile(d)
	default:
		return nil, errors.Wrap(ErrUnclassified, d.path)
	}
}

// typed places the caller's options between an existence default and a forced kind.
func typed(kind Kind, opts []Option) []Option {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, MustExist())
	all = append(all, opts...)
	return append(all, OfKind(kind))
}
