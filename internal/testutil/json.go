package testutil

import (
	"encoding/json"
	"io/fs"
	"testing"
)

// ReadJSON decodes the JSON file name from fsys into T.
func ReadJSON[T any](t *testing.T, fsys fs.FS, name string) T {
	t.Helper()
	var ret T
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(b, &ret); err != nil {
		t.Fatalf("%s: %s", name, err)
	}
	return ret
}
