// Package npm checks and scaffolds the on-disk structure of an npm package.
package npm

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/domain"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/structure"
)

// DefaultLayout returns the layout used when no configuration is present.
func DefaultLayout() domain.LayoutConfig {
	return domain.LayoutConfig{
		Required: domain.ContentsConfig{
			Files: []string{domain.ManifestName},
		},
		Optional: domain.ContentsConfig{
			Directories: []string{"node_modules", "src", "lib", "dist", "test"},
			Files:       []string{"README.md", "LICENSE", "CHANGELOG.md", ".npmignore"},
		},
		ManifestKeys: []string{"name", "version"},
	}
}

// Contents converts declared names into a DirContents value.
func Contents(c domain.ContentsConfig) structure.DirContents {
	return structure.NewDirContents(c.Directories, c.Files)
}
