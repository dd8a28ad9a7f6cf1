package element

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies what an element points at.
type Kind int

const (
	KindOther Kind = iota
	KindFile
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "other"
	}
}

func kindOf(info os.FileInfo) Kind {
	switch {
	case info.IsDir():
		return KindDirectory
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Selector picks which entry kinds a directory listing returns.
type Selector int

const (
	Both Selector = iota
	Files
	Directories
)

func (s Selector) String() string {
	switch s {
	case Files:
		return "files"
	case Directories:
		return "dirs"
	default:
		return "all"
	}
}

func (s Selector) includes(k Kind) bool {
	switch s {
	case Files:
		return k == KindFile
	case Directories:
		return k == KindDirectory
	default:
		return k == KindFile || k == KindDirectory
	}
}

// SelectorNames lists the accepted ParseSelector inputs.
var SelectorNames = []string{"files", "dirs", "all"}

// ParseSelector maps a user supplied name to a Selector.
func ParseSelector(name string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "files", "file", "f":
		return Files, nil
	case "dirs", "dir", "directories", "d":
		return Directories, nil
	case "all", "both", "":
		return Both, nil
	default:
		return Both, errors.Errorf("unknown entry kind: %s. Available kinds: %s", name, strings.Join(SelectorNames, ", "))
	}
}
