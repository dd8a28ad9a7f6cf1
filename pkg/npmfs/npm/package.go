package npm

import (
	"path/filepath"
	"strings"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/domain"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/element"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/structure"
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Package is an npm package root checked against a layout.
type Package struct {
	fs           fs.FileSystem
	root         *element.Directory
	validator    structure.Validator
	manifestKeys []string
}

// Open validates that root is an existing directory and binds it to layout.
func Open(fileSystem fs.FileSystem, root string, layout domain.LayoutConfig) (*Package, error) {
	dir, err := element.NewDirectory(fileSystem, root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open package root %s", root)
	}

	return &Package{
		fs:           fileSystem,
		root:         dir,
		validator:    structure.NewValidator(dir, Contents(layout.Required), Contents(layout.Optional)),
		manifestKeys: append([]string(nil), layout.ManifestKeys...),
	}, nil
}

func (p *Package) Root() *element.Directory {
	return p.root
}

func (p *Package) Validator() structure.Validator {
	return p.validator
}

// Manifest reads and parses package.json.
func (p *Package) Manifest() (*element.JSONFile, error) {
	return element.NewJSONFile(p.fs, p.fs.Join(p.root.Path(), domain.ManifestName))
}

// Check diffs the package root against its layout and reads the manifest when
// one exists. A manifest that does not parse is an error.
func (p *Package) Check() (domain.Report, error) {
	missing, err := p.validator.Report()
	if err != nil {
		return domain.Report{}, err
	}

	size, err := p.root.Size()
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		Root:                 p.root.Path(),
		Size:                 size,
		MissingRequiredDirs:  orEmpty(missing.MissingRequiredDirs),
		MissingRequiredFiles: orEmpty(missing.MissingRequiredFiles),
		MissingOptionalDirs:  orEmpty(missing.MissingOptionalDirs),
		MissingOptionalFiles: orEmpty(missing.MissingOptionalFiles),
		MissingManifestKeys:  []string{},
	}

	// a package.json that is not a regular file is already reported by the validator
	info, err := p.fs.Stat(report.ManifestPath())
	if err != nil || !info.Mode().IsRegular() {
		return report, nil
	}

	manifest, err := p.Manifest()
	if err != nil {
		return domain.Report{}, err
	}
	report.Name = stringValue(manifest, "name")
	report.Version = stringValue(manifest, "version")
	for _, key := range p.manifestKeys {
		if !manifest.ContainsKey(key) {
			report.MissingManifestKeys = append(report.MissingManifestKeys, key)
		}
	}

	return report, nil
}

func orEmpty(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

func stringValue(manifest *element.JSONFile, key string) string {
	v, ok := manifest.Value(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Target is a missing entry that Scaffold can create.
type Target struct {
	Name string
	Kind element.Kind
}

func (t Target) String() string {
	return t.Kind.String() + ": " + t.Name
}

// Targets lists the required entries a report says are missing.
func Targets(report domain.Report) []Target {
	var targets []Target
	for _, name := range report.MissingRequiredDirs {
		targets = append(targets, Target{Name: name, Kind: element.KindDirectory})
	}
	for _, name := range report.MissingRequiredFiles {
		targets = append(targets, Target{Name: name, Kind: element.KindFile})
	}
	return targets
}

// Scaffold creates the targets below the package root and returns their paths.
// A missing manifest is written as a minimal package.json.
func (p *Package) Scaffold(targets []Target) ([]string, error) {
	var created []string
	for _, target := range targets {
		path := p.fs.Join(p.root.Path(), target.Name)

		// refuse to overwrite anything that appeared since the check
		if _, err := element.Describe(p.fs, path, element.MustNotExist(), element.OfKind(target.Kind)); err != nil {
			return created, err
		}

		switch target.Kind {
		case element.KindDirectory:
			if err := p.fs.MkdirAll(path, 0755); err != nil {
				return created, errors.Wrapf(err, "failed to create directory %s", path)
			}
		case element.KindFile:
			if err := p.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return created, errors.Wrapf(err, "failed to create parent of %s", path)
			}
			var data []byte
			if strings.EqualFold(target.Name, domain.ManifestName) {
				manifest, err := NewManifest(p.root.Name())
				if err != nil {
					return created, err
				}
				data = manifest
			}
			if err := p.fs.WriteFile(path, data, 0644); err != nil {
				return created, errors.Wrapf(err, "failed to write file %s", path)
			}
		default:
			return created, errors.Errorf("cannot scaffold %s", target)
		}
		created = append(created, path)
	}
	return created, nil
}

// PatchManifest adds the given keys to package.json with placeholder values,
// keeping existing keys and their order.
func (p *Package) PatchManifest(keys []string) error {
	manifest, err := p.Manifest()
	if err != nil {
		return err
	}

	data := []byte(manifest.Content())
	for _, key := range keys {
		if manifest.ContainsKey(key) {
			continue
		}
		data, err = sjson.SetBytes(data, escapeKey(key), placeholder(key, p.root.Name()))
		if err != nil {
			return errors.Wrapf(err, "failed to set manifest key %s", key)
		}
	}

	if err := p.fs.WriteFile(manifest.Path(), pretty.Pretty(data), 0644); err != nil {
		return errors.Wrap(err, "failed to write manifest")
	}
	return nil
}

// NewManifest builds a minimal package.json for a package named after its directory.
func NewManifest(dirName string) ([]byte, error) {
	data := []byte("{}")
	for _, key := range []string{"name", "version"} {
		var err error
		data, err = sjson.SetBytes(data, key, placeholder(key, dirName))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to set manifest key %s", key)
		}
	}
	return pretty.Pretty(data), nil
}

func placeholder(key, dirName string) string {
	switch key {
	case "name":
		return strings.ToLower(strings.ReplaceAll(dirName, " ", "-"))
	case "version":
		return "1.0.0"
	default:
		return ""
	}
}

// escapeKey quotes sjson path metacharacters so key is set verbatim.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
