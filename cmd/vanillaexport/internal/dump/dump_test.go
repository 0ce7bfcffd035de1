package dump

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/cfg"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/golang/base"
	"github.com/forumport/vanillaexport/internal/fixtures"
	"github.com/forumport/vanillaexport/internal/osext"
)

func setOpts(t *testing.T, o options) {
	t.Helper()
	old := opts
	t.Cleanup(func() { opts = old })
	opts = o
}

func sampleDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vanilla.db")
	require.NoError(t, fixtures.Create(t.Context(), path))
	t.Cleanup(func() { cfg.DB = cfg.DBParams{} })
	cfg.DB = cfg.DBParams{Driver: "sqlite", Database: path}
}

func Test_runDump(t *testing.T) {
	t.Run("zip file", func(t *testing.T) {
		sampleDB(t)
		out := filepath.Join(t.TempDir(), "dump.zip")
		setOpts(t, options{Output: out, Page: 100})

		require.NoError(t, runDump(t.Context(), CmdDump, nil))

		zr, err := zip.OpenReader(out)
		require.NoError(t, err)
		defer zr.Close()
		var names []string
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		assert.Contains(t, names, "users/0.json")
		assert.Contains(t, names, "posts/0.json")
		assert.Contains(t, names, "manifest.json")
		assert.NotContains(t, names, "votes/0.json")
	})
	t.Run("existing output", func(t *testing.T) {
		sampleDB(t)
		out := filepath.Join(t.TempDir(), "dump.zip")
		require.NoError(t, os.WriteFile(out, []byte("x"), 0o644))
		setOpts(t, options{Output: out, Page: 100})

		err := runDump(t.Context(), CmdDump, nil)
		assert.ErrorIs(t, err, osext.ErrExists)
		assert.Equal(t, base.SInvalidParameters, base.Status(err))
	})
	t.Run("invalid page size", func(t *testing.T) {
		setOpts(t, options{Output: filepath.Join(t.TempDir(), "x"), Page: 0})
		assert.Error(t, runDump(t.Context(), CmdDump, nil))
	})
	t.Run("negative rate", func(t *testing.T) {
		setOpts(t, options{Output: filepath.Join(t.TempDir(), "x"), Page: 10, Rate: -1})
		assert.Error(t, runDump(t.Context(), CmdDump, nil))
	})
}
