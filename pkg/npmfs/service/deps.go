package service

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/ux"
)

// Deps contains all external dependencies for services
type Deps struct {
	FS       fs.FileSystem
	Prompter ux.Prompter
	Logger   ux.Logger
}

// NewDeps creates a new dependencies container with production implementations
func NewDeps() *Deps {
	return &Deps{
		FS:       fs.NewOSFileSystem(),
		Prompter: ux.NewHuhPrompter(),
		Logger:   ux.NewZerologLogger(),
	}
}

// NewTestDeps creates dependencies suitable for testing
func NewTestDeps(fileSystem fs.FileSystem, prompter ux.Prompter, logger ux.Logger) *Deps {
	return &Deps{
		FS:       fileSystem,
		Prompter: prompter,
		Logger:   logger,
	}
}
