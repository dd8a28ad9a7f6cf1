package structure

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/element"
)

// Validator checks a directory for required and optional entries. Add methods
// return a new Validator and leave the receiver untouched.
type Validator struct {
	dir      *element.Directory
	required DirContents
	optional DirContents
}

// Report lists every declared entry that is absent from the directory.
type Report struct {
	MissingRequiredDirs  []string
	MissingRequiredFiles []string
	MissingOptionalDirs  []string
	MissingOptionalFiles []string
}

func (r Report) IsMissingRequired() bool {
	return len(r.MissingRequiredDirs) > 0 || len(r.MissingRequiredFiles) > 0
}

func (r Report) IsMissingOptional() bool {
	return len(r.MissingOptionalDirs) > 0 || len(r.MissingOptionalFiles) > 0
}

func NewValidator(dir *element.Directory, required, optional DirContents) Validator {
	return Validator{dir: dir, required: required, optional: optional}
}

func (v Validator) Directory() *element.Directory { return v.dir }

func (v Validator) Required() DirContents { return v.required }

func (v Validator) Optional() DirContents { return v.optional }

func (v Validator) AddRequiredDirs(names ...string) Validator {
	v.required = v.required.WithDirectories(names...)
	return v
}

func (v Validator) AddRequiredFiles(names ...string) Validator {
	v.required = v.required.WithFiles(names...)
	return v
}

func (v Validator) AddOptionalDirs(names ...string) Validator {
	v.optional = v.optional.WithDirectories(names...)
	return v
}

func (v Validator) AddOptionalFiles(names ...string) Validator {
	v.optional = v.optional.WithFiles(names...)
	return v
}

func (v Validator) MissingRequiredDirs() ([]string, error) {
	return v.missing(element.Directories, v.required.directories)
}

func (v Validator) MissingRequiredFiles() ([]string, error) {
	return v.missing(element.Files, v.required.files)
}

func (v Validator) MissingOptionalDirs() ([]string, error) {
	return v.missing(element.Directories, v.optional.directories)
}

func (v Validator) MissingOptionalFiles() ([]string, error) {
	return v.missing(element.Files, v.optional.files)
}

func (v Validator) IsMissingRequired() (bool, error) {
	r, err := v.Report()
	return r.IsMissingRequired(), err
}

func (v Validator) IsMissingOptional() (bool, error) {
	r, err := v.Report()
	return r.IsMissingOptional(), err
}

// Report lists the directory once and diffs all four declarations against it.
func (v Validator) Report() (Report, error) {
	listing, err := v.dir.Entries(element.Both)
	if err != nil {
		return Report{}, err
	}

	var dirs, files []string
	for i, name := range listing.Names {
		switch listing.Kinds[i] {
		case element.KindDirectory:
			dirs = append(dirs, name)
		case element.KindFile:
			files = append(files, name)
		}
	}

	return Report{
		MissingRequiredDirs:  absent(v.required.directories, dirs),
		MissingRequiredFiles: absent(v.required.files, files),
		MissingOptionalDirs:  absent(v.optional.directories, dirs),
		MissingOptionalFiles: absent(v.optional.files, files),
	}, nil
}

func (v Validator) missing(sel element.Selector, declared []string) ([]string, error) {
	listing, err := v.dir.Entries(sel)
	if err != nil {
		return nil, err
	}
	return absent(declared, listing.Names), nil
}

// absent keeps the declared names with no case-insensitive match in present.
func absent(declared, present []string) []string {
	var out []string
	for _, name := range declared {
		if !element.MatchesAny(name, present) {
			out = append(out, name)
		}
	}
	return out
}
