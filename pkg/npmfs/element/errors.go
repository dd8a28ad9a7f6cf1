package element

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

var (
	// ErrBlankPath is returned when an element is constructed from an empty or whitespace path.
	ErrBlankPath = errors.New("path is blank")

	// ErrMissingStatus is returned when neither existence nor kind was declared.
	ErrMissingStatus = errors.New("element needs an existence or kind declaration")

	ErrPathDoesNotExist = errors.New("path does not exist")
	ErrPathExists       = errors.New("path already exists")
	ErrTypeMismatch     = errors.New("element kind does not match path")

	// ErrUnclassified is returned by Open when the kind resolves to neither file nor directory.
	ErrUnclassified = errors.New("element is neither a file nor a directory")

	ErrInvalidJSON = errors.New("invalid JSON content")
)

// isNotExist reports whether err confirms nothing is at a path. A path that
// continues below a regular file fails with ENOTDIR and cannot exist either.
func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
