package testutil

import (
	"io/fs"
	"testing"
)

// CollectFiles returns the sorted list of regular file paths in fsys.
func CollectFiles(t *testing.T, fsys fs.FS) []string {
	t.Helper()
	var ret []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ret = append(ret, path)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	return ret
}
