package service

import (
	"testing"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/domain"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/element"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/ux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger records messages for assertions
type MockLogger struct {
	messages []string
}

func (m *MockLogger) Info(msg string, fields ...ux.LogField) { m.messages = append(m.messages, msg) }
func (m *MockLogger) Warn(msg string, fields ...ux.LogField) { m.messages = append(m.messages, msg) }
func (m *MockLogger) Error(msg string, fields ...ux.LogField) { m.messages = append(m.messages, msg) }
func (m *MockLogger) Debug(msg string, fields ...ux.LogField) { m.messages = append(m.messages, msg) }

// MockPrompter returns canned answers
type MockPrompter struct {
	confirm   bool
	selection func(options []string) []string
	asked     []string
}

func (m *MockPrompter) Confirm(message string) (bool, error) {
	m.asked = append(m.asked, message)
	return m.confirm, nil
}

func (m *MockPrompter) MultiSelect(message string, options []string) ([]string, error) {
	m.asked = append(m.asked, message)
	if m.selection == nil {
		return options, nil
	}
	return m.selection(options), nil
}

func newTestService(t *testing.T, files map[string]string, dirs ...string) (*PackageService, fs.FileSystem, *MockPrompter, *MockLogger) {
	t.Helper()

	fsys := fs.NewMemFileSystem()
	require.NoError(t, fsys.MkdirAll("/work/app", 0755))
	for _, d := range dirs {
		require.NoError(t, fsys.MkdirAll(fsys.Join("/work/app", d), 0755))
	}
	for name, content := range files {
		path := fsys.Join("/work/app", name)
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}

	prompter := &MockPrompter{}
	logger := &MockLogger{}
	return NewPackageService(NewTestDeps(fsys, prompter, logger)), fsys, prompter, logger
}

func TestPackageService_Check(t *testing.T) {
	svc, _, _, logger := newTestService(t, map[string]string{
		"package.json": `{"name":"app","version":"2.0.0"}`,
	}, "src")

	report, err := svc.Check("/work/app")
	require.NoError(t, err)
	assert.Equal(t, "app", report.Name)
	assert.Equal(t, "2.0.0", report.Version)
	assert.Contains(t, logger.messages, "Package checked")
}

func TestPackageService_CheckAbortsOnMissingRequired(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil, "src")

	report, err := svc.Check("/work/app")
	require.ErrorIs(t, err, domain.ErrRequiredStructureMissing)
	require.NotNil(t, report)
	assert.Equal(t, []string{"package.json"}, report.MissingRequiredFiles)
}

func TestPackageService_CheckUsesProjectLayout(t *testing.T) {
	svc, _, _, _ := newTestService(t, map[string]string{
		"package.json": `{"name":"app","version":"2.0.0"}`,
		".npmfs.json":  `{"required": {"directories": ["src", "types"], "files": ["package.json"]}}`,
	}, "src")

	report, err := svc.Check("/work/app")
	require.ErrorIs(t, err, domain.ErrRequiredStructureMissing)
	assert.Equal(t, []string{"types"}, report.MissingRequiredDirs)
}

func TestPackageService_List(t *testing.T) {
	svc, _, _, _ := newTestService(t, map[string]string{
		"package.json": "{}",
		"src/index.js": "",
	}, "src")

	listing, err := svc.List(ListRequest{Path: "/work/app", Selector: element.Files, Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json", "src/index.js"}, listing.Names)

	listing, err = svc.List(ListRequest{Path: "/work/app", Selector: element.Directories})
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, listing.Names)

	_, err = svc.List(ListRequest{Path: "/work/app/package.json"})
	require.ErrorIs(t, err, element.ErrTypeMismatch)
}

func TestPackageService_Size(t *testing.T) {
	svc, _, _, _ := newTestService(t, map[string]string{
		"package.json": "{}",
		"src/index.js": "1234",
	}, "src")

	size, err := svc.Size("/work/app")
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)

	size, err = svc.Size("/work/nothing")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), size)
}

func TestPackageService_ManifestAndSearch(t *testing.T) {
	svc, _, _, _ := newTestService(t, map[string]string{
		"package.json": `{"name":"app","license":"MIT"}`,
		"README.md":    "# App\nUsage: npx app --help\n",
	})

	manifest, err := svc.Manifest("/work/app")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "license"}, manifest.Keys())

	found, err := svc.Search(SearchRequest{Path: "/work/app/README.md", Query: "USAGE"})
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.Search(SearchRequest{Path: "/work/app/README.md", Query: "USAGE", CaseSensitive: true})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = svc.Search(SearchRequest{Path: "/work/app/README.md", Query: `--\w+`, Regex: true})
	require.NoError(t, err)
	assert.True(t, found)
}

func TestPackageService_ScaffoldAssumeYes(t *testing.T) {
	svc, fsys, prompter, _ := newTestService(t, map[string]string{
		".npmfs.json": `{"required": {"directories": ["src"], "files": ["package.json"]}}`,
	})

	result, err := svc.Scaffold("/work/app", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/app/src", "/work/app/package.json"}, result.Created)
	assert.False(t, result.PatchedManifest)
	assert.Empty(t, prompter.asked)
	assert.True(t, fsys.Exists("/work/app/src"))

	_, err = svc.Check("/work/app")
	require.NoError(t, err)
}

func TestPackageService_ScaffoldInteractive(t *testing.T) {
	svc, fsys, prompter, _ := newTestService(t, map[string]string{
		"package.json": `{"name":"app"}`,
		".npmfs.json":  `{"required": {"directories": ["src", "lib"], "files": ["package.json"]}}`,
	})
	prompter.confirm = true
	prompter.selection = func(options []string) []string { return options[1:] }

	result, err := svc.Scaffold("/work/app", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/app/lib"}, result.Created)
	assert.True(t, result.PatchedManifest)
	assert.Len(t, prompter.asked, 2)
	assert.False(t, fsys.Exists("/work/app/src"))

	manifest, err := svc.Manifest("/work/app")
	require.NoError(t, err)
	assert.True(t, manifest.ContainsKey("version"))
}

func TestPackageService_ScaffoldDeclined(t *testing.T) {
	svc, _, prompter, _ := newTestService(t, map[string]string{"package.json": `{"name":"app"}`})
	prompter.confirm = false

	result, err := svc.Scaffold("/work/app", false)
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.False(t, result.PatchedManifest)
}

func TestPackageService_InitConfig(t *testing.T) {
	svc, fsys, _, _ := newTestService(t, nil)

	path, err := svc.InitConfig(false)
	require.NoError(t, err)
	assert.True(t, fsys.Exists(path))

	_, err = svc.InitConfig(false)
	assert.Error(t, err)

	_, err = svc.InitConfig(true)
	assert.NoError(t, err)
}
