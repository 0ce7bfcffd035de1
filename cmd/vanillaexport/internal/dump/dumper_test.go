package dump

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rusq/fsadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumport/vanillaexport"
	"github.com/forumport/vanillaexport/internal/testutil"
	"github.com/forumport/vanillaexport/types"
)

type countProgress struct {
	rows  int
	descr []string
}

func (p *countProgress) Describe(s string) { p.descr = append(p.descr, s) }
func (p *countProgress) Add(n int) error   { p.rows += n; return nil }

func testExporter(t *testing.T, custom vanillaexport.Custom) *vanillaexport.Exporter {
	t.Helper()
	conf := vanillaexport.DefConfig()
	conf.Driver = "sqlite"
	conf.Database = ":memory:"
	if custom != nil {
		conf.Custom = custom
	}
	e, err := vanillaexport.New(t.Context(), conf, vanillaexport.WithConn(testutil.TestDB(t)))
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func TestDumper_Dump(t *testing.T) {
	custom := vanillaexport.Custom{
		vanillaexport.OptImportKudos:     true,
		vanillaexport.OptImportBookmarks: true,
	}
	dir := t.TempDir()
	pb := new(countProgress)
	d := NewDumper(testExporter(t, custom), fsadapter.NewDirectory(dir), WithPageSize(2), WithProgress(pb))
	d.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	m, err := d.Dump(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"bookmarks/0.json",
		"bookmarks/2.json",
		"categories/0.json",
		"categories/2.json",
		"manifest.json",
		"messages/0.json",
		"messages/2.json",
		"posts/0.json",
		"posts/2.json",
		"posts/4.json",
		"rooms/0.json",
		"rooms/2.json",
		"topics/0.json",
		"topics/2.json",
		"users/0.json",
		"users/2.json",
		"votes/0.json",
		"votes/2.json",
	}, testutil.CollectFiles(t, os.DirFS(dir)))

	assert.Equal(t, 2, m.PageSize)
	assert.Equal(t, 3, m.Entities[vanillaexport.EntityUsers].Rows)
	assert.Equal(t, 2, m.Entities[vanillaexport.EntityUsers].Pages)
	assert.Equal(t, 5, m.Entities[vanillaexport.EntityPosts].Rows)
	assert.Equal(t, 4, m.Entities[vanillaexport.EntityBookmarks].Rows)
	assert.Equal(t, 3+3+4+3+3+5+3+4, pb.rows)
	assert.Len(t, pb.descr, len(vanillaexport.AllEntities))

	users := testutil.ReadJSON[types.Users](t, os.DirFS(dir), "users/2.json")
	assert.Equal(t, []int64{4}, types.Keys(users))

	got := testutil.ReadJSON[Manifest](t, os.DirFS(dir), "manifest.json")
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "sqlite", got.Source.Driver)
	assert.Empty(t, got.Source.Host)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), got.Created)
}

func TestDumper_Dump_flagsOff(t *testing.T) {
	dir := t.TempDir()
	d := NewDumper(testExporter(t, nil), fsadapter.NewDirectory(dir))
	m, err := d.Dump(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Entities[vanillaexport.EntityVotes].Rows)
	assert.Equal(t, 0, m.Entities[vanillaexport.EntityBookmarks].Pages)
	assert.NoDirExists(t, filepath.Join(dir, "votes"))
	assert.FileExists(t, filepath.Join(dir, "users", "0.json"))
}

func TestDumper_Dump_error(t *testing.T) {
	e := testExporter(t, nil)
	require.NoError(t, e.Close())
	d := NewDumper(e, fsadapter.NewDirectory(t.TempDir()))
	_, err := d.Dump(context.Background())
	assert.ErrorIs(t, err, vanillaexport.ErrNotConfigured)
}

func TestDumper_Dump_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := NewDumper(testExporter(t, nil), fsadapter.NewDirectory(t.TempDir()), WithRate(1))
	_, err := d.Dump(ctx)
	assert.Error(t, err)
}

func TestDumper_Dump_collapsedKeys(t *testing.T) {
	db := testutil.TestDB(t)
	// CommentID 0 and NULL produce the same vote id.
	_, err := db.ExecContext(t.Context(), `INSERT INTO GDN_Kudos (DiscussionID, CommentID, UserID, Action) VALUES (1, 0, 2, 1)`)
	require.NoError(t, err)
	conf := vanillaexport.DefConfig()
	conf.Driver = "sqlite"
	conf.Database = ":memory:"
	conf.Custom = vanillaexport.Custom{vanillaexport.OptImportKudos: true}
	e, err := vanillaexport.New(t.Context(), conf, vanillaexport.WithConn(db))
	require.NoError(t, err)

	dir := t.TempDir()
	d := NewDumper(e, fsadapter.NewDirectory(dir), WithPageSize(3))
	m, err := d.Dump(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, m.Entities[vanillaexport.EntityVotes].Rows)
	assert.Equal(t, 2, m.Entities[vanillaexport.EntityVotes].Pages)
	votes := testutil.ReadJSON[types.Votes](t, os.DirFS(dir), "votes/3.json")
	assert.Equal(t, []string{"2_N_2"}, types.Keys(votes))
}
