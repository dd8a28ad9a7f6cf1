// Package structure compares a directory's live entries against declared
// required and optional entry names.
package structure

// DirContents is an immutable pair of directory and file names.
type DirContents struct {
	directories []string
	files       []string
}

// NewDirContents copies dirs and files into a new value.
func NewDirContents(dirs, files []string) DirContents {
	return DirContents{
		directories: clone(dirs),
		files:       clone(files),
	}
}

func (c DirContents) Directories() []string {
	return clone(c.directories)
}

func (c DirContents) Files() []string {
	return clone(c.files)
}

// WithDirectories returns a value with names appended to the directories.
// Duplicates are kept.
func (c DirContents) WithDirectories(names ...string) DirContents {
	return DirContents{
		directories: concat(c.directories, names),
		files:       clone(c.files),
	}
}

// WithFiles returns a value with names appended to the files. Duplicates are kept.
func (c DirContents) WithFiles(names ...string) DirContents {
	return DirContents{
		directories: clone(c.directories),
		files:       concat(c.files, names),
	}
}

func (c DirContents) IsZero() bool {
	return len(c.directories) == 0 && len(c.files) == 0
}

func clone(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
