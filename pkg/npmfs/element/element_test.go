package element

import (
	"testing"

	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_Validation(t *testing.T) {
	fsys := memTree(t, map[string]string{"/pkg/package.json": "{}"}, "/pkg/src")

	tests := []struct {
		name    string
		path    string
		opts    []Option
		wantErr error
	}{
		{name: "blank path", path: "   ", opts: []Option{MustExist()}, wantErr: ErrBlankPath},
		{name: "empty path", path: "", opts: []Option{OfKind(KindFile)}, wantErr: ErrBlankPath},
		{name: "no status", path: "/pkg", wantErr: ErrMissingStatus},
		{name: "missing but required", path: "/pkg/docs", opts: []Option{MustExist()}, wantErr: ErrPathDoesNotExist},
		{name: "present but forbidden", path: "/pkg/src", opts: []Option{MustNotExist()}, wantErr: ErrPathExists},
		{name: "directory declared as file", path: "/pkg/src", opts: []Option{MustExist(), OfKind(KindFile)}, wantErr: ErrTypeMismatch},
		{name: "file declared as directory", path: "/pkg/package.json", opts: []Option{MustExist(), OfKind(KindDirectory)}, wantErr: ErrTypeMismatch},
		{name: "existing directory", path: "/pkg/src", opts: []Option{MustExist()}},
		{name: "virtual path", path: "/pkg/docs", opts: []Option{MustNotExist()}},
		{name: "kind only", path: "/pkg/lib", opts: []Option{OfKind(KindDirectory)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Describe(fsys, tt.path, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDescribe_DerivedFields(t *testing.T) {
	fsys := memTree(t, map[string]string{"/pkg/package.json": "{}"}, "/pkg/src")

	d, err := Describe(fsys, "/pkg/src/../package.json", MustExist())
	require.NoError(t, err)
	assert.Equal(t, "/pkg/package.json", d.Path())
	assert.Equal(t, "package.json", d.Name())
	assert.Equal(t, "/pkg", d.Parent())
	assert.Equal(t, KindFile, d.Kind())
	assert.Equal(t, "/pkg/package.json", d.String())

	d, err = Describe(fsys, "pkg/src", MustExist())
	require.NoError(t, err)
	assert.Equal(t, "/pkg/src", d.Path())
	assert.Equal(t, KindDirectory, d.Kind())

	d, err = Describe(fsys, "/pkg/docs", MustNotExist())
	require.NoError(t, err)
	assert.Equal(t, KindOther, d.Kind())
	assert.False(t, d.Exists())

	d, err = Describe(fsys, "/pkg/docs", MustNotExist(), OfKind(KindDirectory))
	require.NoError(t, err)
	assert.Equal(t, KindDirectory, d.Kind())
}

func TestDescribe_Idempotent(t *testing.T) {
	fsys := memTree(t, nil, "/pkg/src")

	first, err := Describe(fsys, "/pkg/src", MustExist())
	require.NoError(t, err)
	second, err := Describe(fsys, "/pkg/src", MustExist())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDescriptor_ExistsIsLive(t *testing.T) {
	fsys := memTree(t, nil, "/pkg")

	d, err := Describe(fsys, "/pkg/dist", MustNotExist(), OfKind(KindDirectory))
	require.NoError(t, err)
	assert.False(t, d.Exists())

	require.NoError(t, fsys.MkdirAll("/pkg/dist", 0755))
	assert.True(t, d.Exists())

	require.NoError(t, fsys.RemoveAll("/pkg/dist"))
	require.NoError(t, fsys.WriteFile("/pkg/dist", []byte("x"), 0644))
	assert.False(t, d.Exists(), "a file where a directory was declared does not count")
}

func TestOpen_Variants(t *testing.T) {
	fsys := memTree(t, map[string]string{"/pkg/index.js": "module.exports = {}\n"}, "/pkg/src")

	el, err := Open(fsys, "/pkg/src", MustExist())
	require.NoError(t, err)
	_, ok := el.(*Directory)
	assert.True(t, ok)

	el, err = Open(fsys, "/pkg/index.js", MustExist())
	require.NoError(t, err)
	file, ok := el.(*File)
	require.True(t, ok)
	assert.Equal(t, "module.exports = {}\n", file.Content())

	el, err = Open(fsys, "/pkg/new.js", MustNotExist(), OfKind(KindFile))
	require.NoError(t, err)
	empty, err := el.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	_, err = Open(fsys, "/pkg/unknown", MustNotExist())
	require.ErrorIs(t, err, ErrUnclassified)
}

func TestTypedConstructors_OnDisk(t *testing.T) {
	root := diskTree(t, map[string]string{"package.json": `{"name":"x"}`}, "src")
	fsys := fs.NewOSFileSystem()

	_, err := NewDirectory(fsys, root)
	require.NoError(t, err)

	_, err = NewFile(fsys, root)
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = NewDirectory(fsys, root+"/package.json")
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = NewFile(fsys, root+"/missing.json")
	require.ErrorIs(t, err, ErrPathDoesNotExist)

	dir, err := NewDirectory(fsys, root+"/build", MustNotExist())
	require.NoError(t, err)
	assert.Equal(t, KindDirectory, dir.Kind())
	assert.False(t, dir.Exists())
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		input   string
		want    Selector
		wantErr bool
	}{
		{input: "files", want: Files},
		{input: "DIRS", want: Directories},
		{input: "all", want: Both},
		{input: "", want: Both},
		{input: "links", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSelector(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
