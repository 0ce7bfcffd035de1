package vanillaexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumport/vanillaexport/types"
)

func TestExporter_GetPosts(t *testing.T) {
	want := types.Posts{
		1: {PID: 1, TID: 1, ReplyingTo: 1, Timestamp: 1585702800000, Edited: startms, Content: "Thanks!", UID: 2, Images: []string{}, Attachments: []string{"/uploads/files/2020/d.zip"}, Markup: "Markdown"},
		2: {PID: 2, TID: 1, ReplyingTo: 1, Timestamp: 1585701000000, Edited: 1585706400000, Content: "You are welcome", UID: 1, Images: []string{"/uploads/files/2020/c.jpg"}, Attachments: []string{}, Markup: "Html"},
		3: {PID: 3, TID: 2, ReplyingTo: 2, Timestamp: 1586048400000, Edited: startms, Content: "Reply", UID: 1, Images: []string{}, Attachments: []string{}, Markup: "Markdown"},
		4: {PID: 4, TID: 2, ReplyingTo: 2, Timestamp: startms, Edited: startms, Content: "", UID: 4, Images: []string{}, Attachments: []string{}, Markup: "Text"},
		5: {PID: 5, TID: 3, ReplyingTo: 3, Timestamp: 1588291200000, Edited: startms, Content: "Comment", UID: 2, Images: []string{}, Attachments: []string{}, Markup: "Markdown"},
	}
	e := testExporter(t, Custom{OptImportAttachments: true})
	got, err := e.GetPosts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExporter_GetPaginatedPosts(t *testing.T) {
	e := testExporter(t, nil)
	// comments are paginated by the creation time, the comment without
	// one sorts first.
	got, err := e.GetPaginatedPosts(t.Context(), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4}, types.Keys(got))

	got, err = e.GetPaginatedPosts(t.Context(), 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, types.Keys(got))
}

func TestExporter_postsQuery(t *testing.T) {
	e, _ := mockExporter(t, Custom{OptImportAttachments: true})
	e.qb = mysqlBuilder(e.cfg)
	sql, args, err := e.postsQuery(1001, 2000).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "FROM GDN_Comment AS p")
	assert.Contains(t, sql, "media.ForeignID = p.CommentID")
	assert.Contains(t, sql, "ORDER BY p.DateInserted, p.CommentID LIMIT 2000 OFFSET 1001")
	assert.Equal(t, []any{"image%", "comment", "image%", "comment"}, args)
}
