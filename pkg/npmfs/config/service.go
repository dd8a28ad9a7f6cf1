package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/domain"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/npm"
	"github.com/pkg/errors"
)

// ProjectFileName is the per-package layout override looked up in a package root.
const ProjectFileName = ".npmfs.json"

// Service handles layout configuration
type Service struct {
	fs fs.FileSystem
}

// New creates a new config service
func New(fileSystem fs.FileSystem) *Service {
	return &Service{fs: fileSystem}
}

// Path returns the user configuration file path
func (s *Service) Path() (string, error) {
	configDir, err := s.fs.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return s.fs.Join(configDir, "npm-fs", "config.json"), nil
}

// Load returns the layout for a package root. The project file wins over the
// user config; without either the default layout is returned. Keys absent from
// a config file keep their default values.
func (s *Service) Load(projectDir string) (*domain.LayoutConfig, error) {
	if projectDir != "" {
		projectPath := s.fs.Join(projectDir, ProjectFileName)
		if s.fs.Exists(projectPath) {
			return s.read(projectPath)
		}
	}

	configPath, err := s.Path()
	if err != nil {
		return nil, err
	}
	if !s.fs.Exists(configPath) {
		layout := npm.DefaultLayout()
		return &layout, nil
	}
	return s.read(configPath)
}

func (s *Service) read(path string) (*domain.LayoutConfig, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	layout := npm.DefaultLayout()
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return &layout, nil
}

// Save writes the layout to the user configuration file
func (s *Service) Save(layout *domain.LayoutConfig) (string, error) {
	configPath, err := s.Path()
	if err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal config")
	}

	if err := s.fs.WriteFile(configPath, data, 0644); err != nil {
		return "", errors.Wrap(err, "failed to write config file")
	}

	return configPath, nil
}
