package service

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/config"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/domain"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/element"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/npm"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/ux"
	"github.com/pkg/errors"
)

// PackageService orchestrates package checks and element queries
type PackageService struct {
	deps   *Deps
	config *config.Service
}

// NewPackageService creates a new package service
func NewPackageService(deps *Deps) *PackageService {
	return &PackageService{
		deps:   deps,
		config: config.New(deps.FS),
	}
}

// Config exposes the layout configuration service
func (s *PackageService) Config() *config.Service {
	return s.config
}

func (s *PackageService) open(root string) (*npm.Package, error) {
	layout, err := s.config.Load(root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load layout")
	}
	return npm.Open(s.deps.FS, root, *layout)
}

// Check reports how the package at root deviates from its layout. A report
// with missing required structure is returned together with its Err().
func (s *PackageService) Check(root string) (*domain.Report, error) {
	pkg, err := s.open(root)
	if err != nil {
		return nil, err
	}

	report, err := pkg.Check()
	if err != nil {
		s.deps.Logger.Error("Package check failed",
			ux.Field("root", root),
			ux.Field("error", err))
		return nil, errors.Wrapf(err, "failed to check package %s", root)
	}

	s.deps.Logger.Info("Package checked",
		ux.Field("root", report.Root),
		ux.Field("missingRequired", report.IsMissingRequired()),
		ux.Field("missingOptional", report.IsMissingOptional()),
		ux.Field("size", report.Size))

	return &report, report.Err()
}

// ListRequest contains parameters for listing a directory
type ListRequest struct {
	Path      string
	Selector  element.Selector
	Recursive bool
}

// List lists a directory's entries
func (s *PackageService) List(req ListRequest) (element.Listing, error) {
	dir, err := element.NewDirectory(s.deps.FS, req.Path)
	if err != nil {
		return element.Listing{}, err
	}

	var opts []element.ListOption
	if req.Recursive {
		opts = append(opts, element.Recursive())
	}

	listing, err := dir.Entries(req.Selector, opts...)
	if err != nil {
		return element.Listing{}, err
	}

	s.deps.Logger.Debug("Listed directory",
		ux.Field("path", dir.Path()),
		ux.Field("kind", req.Selector.String()),
		ux.Field("recursive", req.Recursive),
		ux.Field("count", listing.Count()))

	return listing, nil
}

// Size returns the size of path in bytes, -1 if nothing is there
func (s *PackageService) Size(path string) (int64, error) {
	abs, err := s.deps.FS.Abs(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve path %s", path)
	}
	size, err := element.SizeOf(s.deps.FS, abs)
	if err != nil {
		return 0, err
	}

	s.deps.Logger.Debug("Computed size", ux.Field("path", abs), ux.Field("bytes", size))
	return size, nil
}

// Manifest reads the package.json of the package at root
func (s *PackageService) Manifest(root string) (*element.JSONFile, error) {
	dir, err := element.NewDirectory(s.deps.FS, root)
	if err != nil {
		return nil, err
	}
	return element.NewJSONFile(s.deps.FS, s.deps.FS.Join(dir.Path(), domain.ManifestName))
}

// SearchRequest contains parameters for searching a file's content
type SearchRequest struct {
	Path          string
	Query         string
	Regex         bool
	CaseSensitive bool
}

// Search reports whether a file contains the query
func (s *PackageService) Search(req SearchRequest) (bool, error) {
	file, err := element.NewFile(s.deps.FS, req.Path)
	if err != nil {
		return false, err
	}

	var opts []element.MatchOption
	if req.CaseSensitive {
		opts = append(opts, element.CaseSensitive())
	}

	if req.Regex {
		return file.Matches(req.Query, opts...)
	}
	return file.Contains(req.Query, opts...), nil
}

// ScaffoldResult lists what Scaffold changed
type ScaffoldResult struct {
	Created         []string
	PatchedManifest bool
}

// Scaffold creates missing required entries of the package at root and adds
// missing manifest keys. Unless assumeYes is set the user picks the entries and
// confirms the manifest patch.
func (s *PackageService) Scaffold(root string, assumeYes bool) (*ScaffoldResult, error) {
	pkg, err := s.open(root)
	if err != nil {
		return nil, err
	}

	report, err := pkg.Check()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check package %s", root)
	}

	result := &ScaffoldResult{}
	targets := npm.Targets(report)
	if len(targets) > 0 && !assumeYes {
		targets, err = s.chooseTargets(targets)
		if err != nil {
			return nil, err
		}
	}

	result.Created, err = pkg.Scaffold(targets)
	if err != nil {
		return result, errors.Wrap(err, "failed to scaffold package")
	}
	for _, path := range result.Created {
		s.deps.Logger.Info("Created package entry", ux.Field("path", path))
	}

	if len(report.MissingManifestKeys) == 0 {
		return result, nil
	}

	if !assumeYes {
		ok, err := s.deps.Prompter.Confirm("Add missing manifest keys to " + domain.ManifestName + "?")
		if err != nil {
			return result, errors.Wrap(err, "failed to confirm manifest patch")
		}
		if !ok {
			return result, nil
		}
	}

	if err := pkg.PatchManifest(report.MissingManifestKeys); err != nil {
		return result, errors.Wrap(err, "failed to patch manifest")
	}
	result.PatchedManifest = true
	s.deps.Logger.Info("Patched manifest", ux.Field("keys", report.MissingManifestKeys))

	return result, nil
}

func (s *PackageService) chooseTargets(targets []npm.Target) ([]npm.Target, error) {
	labels := make([]string, 0, len(targets))
	byLabel := make(map[string]npm.Target, len(targets))
	for _, target := range targets {
		labels = append(labels, target.String())
		byLabel[target.String()] = target
	}

	chosen, err := s.deps.Prompter.MultiSelect("Create missing required entries", labels)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select entries")
	}

	selected := make([]npm.Target, 0, len(chosen))
	for _, label := range chosen {
		if target, ok := byLabel[label]; ok {
			selected = append(selected, target)
		}
	}
	return selected, nil
}

// InitConfig writes the default layout to the user configuration file
func (s *PackageService) InitConfig(force bool) (string, error) {
	path, err := s.config.Path()
	if err != nil {
		return "", err
	}
	if s.deps.FS.Exists(path) && !force {
		return "", errors.Errorf("config file %s already exists, use --force to overwrite", path)
	}

	layout := npm.DefaultLayout()
	return s.config.Save(&layout)
}
