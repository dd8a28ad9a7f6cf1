package element

import (
	"github.com/SnapLib/npm-fs-sub000/pkg/npmfs/fs"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// JSONFile is a File whose snapshot parses as a JSON object.
type JSONFile struct {
	*File
	doc gjson.Result
}

// Entry is a top-level key/value pair of a JSON object.
type Entry struct {
	Key   string
	Value interface{}
}

// NewJSONFile validates path as a file and parses its snapshot. A virtual file
// has no content and therefore fails with ErrInvalidJSON.
func NewJSONFile(fsys fs.FileSystem, path string, opts ...Option) (*JSONFile, error) {
	f, err := NewFile(fsys, path, opts...)
	if err != nil {
		return nil, err
	}
	return ParseJSON(f)
}

// ParseJSON parses the snapshot of f.
func ParseJSON(f *File) (*JSONFile, error) {
	if !gjson.Valid(f.content) {
		return nil, errors.Wrap(ErrInvalidJSON, f.path)
	}
	doc := gjson.Parse(f.content)
	if !doc.IsObject() {
		return nil, errors.Wrapf(ErrInvalidJSON, "%s: top-level value is not an object", f.path)
	}
	return &JSONFile{File: f, doc: doc}, nil
}

// Keys returns the top-level keys in document order.
func (j *JSONFile) Keys() []string {
	var keys []string
	for _, e := range j.Entries() {
		keys = append(keys, e.Key)
	}
	return keys
}

// Values returns the top-level values in document order. Numbers decode as float64.
func (j *JSONFile) Values() []interface{} {
	var values []interface{}
	for _, e := range j.Entries() {
		values = append(values, e.Value)
	}
	return values
}

func (j *JSONFile) Entries() []Entry {
	var entries []Entry
	j.doc.ForEach(func(key, value gjson.Result) bool {
		entries = append(entries, Entry{Key: key.String(), Value: value.Value()})
		return true
	})
	return entries
}

// ContainsKey reports whether key is a top-level key. The key is compared
// verbatim, so dots and wildcards have no path meaning here.
func (j *JSONFile) ContainsKey(key string) bool {
	_, ok := j.Value(key)
	return ok
}

// Value returns the value of a top-level key. Duplicate keys resolve to the last one.
func (j *JSONFile) Value(key string) (interface{}, bool) {
	var (
		found bool
		value interface{}
	)
	j.doc.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = true
			value = v.Value()
		}
		return true
	})
	return value, found
}

// Get queries the document with gjson path syntax, e.g. "scripts.test".
func (j *JSONFile) Get(path string) gjson.Result {
	return j.doc.Get(path)
}
