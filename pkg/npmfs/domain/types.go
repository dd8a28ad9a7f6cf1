package domain

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ManifestName is the npm package manifest file name.
const ManifestName = "package.json"

// ErrRequiredStructureMissing is returned when a package lacks a required entry or manifest key.
var ErrRequiredStructureMissing = errors.New("required package structure is missing")

// ContentsConfig declares directory and file names expected in a package root
type ContentsConfig struct {
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
}

// LayoutConfig describes how an npm package root is expected to look
type LayoutConfig struct {
	Required     ContentsConfig `json:"required"`
	Optional     ContentsConfig `json:"optional"`
	ManifestKeys []string       `json:"manifest_keys"`
}

// Report is the result of checking a package root against a LayoutConfig
type Report struct {
	Root                 string   `json:"root"`
	Name                 string   `json:"name,omitempty"`
	Version              string   `json:"version,omitempty"`
	Size                 int64    `json:"size"`
	MissingRequiredDirs  []string `json:"missing_required_dirs"`
	MissingRequiredFiles []string `json:"missing_required_files"`
	MissingOptionalDirs  []string `json:"missing_optional_dirs"`
	MissingOptionalFiles []string `json:"missing_optional_files"`
	MissingManifestKeys  []string `json:"missing_manifest_keys"`
}

// IsMissingRequired returns true if a required entry or manifest key is absent
func (r Report) IsMissingRequired() bool {
	return len(r.MissingRequiredDirs) > 0 ||
		len(r.MissingRequiredFiles) > 0 ||
		len(r.MissingManifestKeys) > 0
}

// IsMissingOptional returns true if an optional entry is absent
func (r Report) IsMissingOptional() bool {
	return len(r.MissingOptionalDirs) > 0 || len(r.MissingOptionalFiles) > 0
}

// ManifestPath returns the path to the package.json file
func (r Report) ManifestPath() string {
	return filepath.Join(r.Root, ManifestName)
}

// Err returns ErrRequiredStructureMissing naming what is missing, or nil
func (r Report) Err() error {
	if !r.IsMissingRequired() {
		return nil
	}

	var parts []string
	if len(r.MissingRequiredDirs) > 0 {
		parts = append(parts, "directories: "+strings.Join(r.MissingRequiredDirs, ", "))
	}
	if len(r.MissingRequiredFiles) > 0 {
		parts = append(parts, "files: "+strings.Join(r.MissingRequiredFiles, ", "))
	}
	if len(r.MissingManifestKeys) > 0 {
		parts = append(parts, "manifest keys: "+strings.Join(r.MissingManifestKeys, ", "))
	}
	return errors.Wrapf(ErrRequiredStructureMissing, "%s (%s)", r.Root, strings.Join(parts, "; "))
}
