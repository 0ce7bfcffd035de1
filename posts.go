// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vanillaexport

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/forumport/vanillaexport/internal/normalize"
	"github.com/forumport/vanillaexport/internal/query"
	"github.com/forumport/vanillaexport/types"
)

// dbPost is a comment.  Vanilla keeps the opening post of the discussion in
// the discussion itself, so comments are always replies.
type dbPost struct {
	PID         int64          `db:"pid"`
	TID         sql.NullInt64  `db:"tid"`
	Created     sql.NullInt64  `db:"created"`
	Edited      sql.NullInt64  `db:"edited"`
	Content     sql.NullString `db:"content"`
	UID         sql.NullInt64  `db:"uid"`
	Images      sql.NullString `db:"images"`
	Attachments sql.NullString `db:"attachments"`
	Markup      sql.NullString `db:"markup"`
}

func (r dbPost) canonical(startms int64) types.Post {
	return types.Post{
		PID:         r.PID,
		TID:         r.TID.Int64,
		ReplyingTo:  r.TID.Int64,
		Timestamp:   normalize.Millis(r.Created, startms),
		Edited:      normalize.Millis(r.Edited, startms),
		Content:     r.Content.String,
		UID:         r.UID.Int64,
		Images:      normalize.SplitList(r.Images.String),
		Attachments: normalize.SplitList(r.Attachments.String),
		Markup:      r.Markup.String,
	}
}

func (e *Exporter) postsQuery(offset, limit int) sq.SelectBuilder {
	d := e.qb.Dialect()
	s := e.qb.Select(
		query.As("p.CommentID", "pid"),
		query.As("p.DiscussionID", "tid"),
		query.As(d.UnixTime("p.DateInserted"), "created"),
		query.As(d.UnixTime("p.DateUpdated"), "edited"),
		query.As("p.Body", "content"),
		query.As("p.InsertUserID", "uid"),
	)
	if e.cfg.ImportAttachments() {
		s = s.
			Column(e.qb.Media("p.CommentID", query.ForeignComment, true, "images")).
			Column(e.qb.Media("p.CommentID", query.ForeignComment, false, "attachments"))
	}
	s = s.Column(query.As("p.Format", "markup")).
		From(e.qb.From("Comment", "p")).
		OrderBy("p.DateInserted", "p.CommentID")
	return query.Paginate(s, offset, limit)
}

// GetPosts returns all comments, ordered by the creation time.
func (e *Exporter) GetPosts(ctx context.Context) (types.Posts, error) {
	return e.GetPaginatedPosts(ctx, 0, -1)
}

// GetPaginatedPosts returns at most limit comments, skipping offset comments.
// If offset or limit is negative, all comments are returned.  Comments are
// paginated in the order of their creation time.
func (e *Exporter) GetPaginatedPosts(ctx context.Context, offset, limit int) (types.Posts, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	startms := e.startMillis()
	posts := make(types.Posts)
	if err := extract(ctx, e, EntityPosts, e.postsQuery(offset, limit), func(r dbPost) {
		posts[r.PID] = r.canonical(startms)
	}); err != nil {
		return nil, err
	}
	return posts, nil
}
