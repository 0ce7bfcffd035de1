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

const untitledTopic = "Untitled"

type dbTopic struct {
	TID         int64          `db:"tid"`
	CID         sql.NullInt64  `db:"cid"`
	UID         sql.NullInt64  `db:"uid"`
	ViewCount   sql.NullInt64  `db:"viewcount"`
	Title       sql.NullString `db:"title"`
	Created     sql.NullInt64  `db:"created"`
	Edited      sql.NullInt64  `db:"edited"`
	Pinned      sql.NullInt64  `db:"pinned"`
	Images      sql.NullString `db:"images"`
	Attachments sql.NullString `db:"attachments"`
	Content     sql.NullString `db:"content"`
}

func (r dbTopic) canonical(startms int64) types.Topic {
	return types.Topic{
		TID:         r.TID,
		CID:         r.CID.Int64,
		UID:         r.UID.Int64,
		ViewCount:   r.ViewCount.Int64,
		Title:       normalize.TitleFirst(r.Title.String, untitledTopic),
		Timestamp:   normalize.Millis(r.Created, startms),
		Edited:      normalize.Millis(r.Edited, startms),
		Pinned:      r.Pinned.Int64 != 0,
		Images:      normalize.SplitList(r.Images.String),
		Attachments: normalize.SplitList(r.Attachments.String),
		Content:     r.Content.String,
	}
}

func (e *Exporter) topicsQuery(offset, limit int) sq.SelectBuilder {
	d := e.qb.Dialect()
	s := e.qb.Select(
		query.As("t.DiscussionID", "tid"),
		query.As("t.CategoryID", "cid"),
		query.As("t.InsertUserID", "uid"),
		query.As("t.CountViews", "viewcount"),
		query.As("t.Name", "title"),
		query.As(d.UnixTime("t.DateInserted"), "created"),
		query.As(d.UnixTime("t.DateUpdated"), "edited"),
		query.As("t.Announce", "pinned"),
	)
	if e.cfg.ImportAttachments() {
		s = s.
			Column(e.qb.Media("t.DiscussionID", query.ForeignDiscussion, true, "images")).
			Column(e.qb.Media("t.DiscussionID", query.ForeignDiscussion, false, "attachments"))
	}
	s = s.Column(query.As("t.Body", "content")).
		From(e.qb.From("Discussion", "t")).
		OrderBy("t.DiscussionID")
	return query.Paginate(s, offset, limit)
}

// GetTopics returns all discussions.
func (e *Exporter) GetTopics(ctx context.Context) (types.Topics, error) {
	return e.GetPaginatedTopics(ctx, 0, -1)
}

// GetPaginatedTopics returns at most limit discussions, skipping offset
// discussions.  If offset or limit is negative, all discussions are returned.
// Image and attachment lists are populated only if the importAttachments
// option is set.
func (e *Exporter) GetPaginatedTopics(ctx context.Context, offset, limit int) (types.Topics, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	startms := e.startMillis()
	topics := make(types.Topics)
	if err := extract(ctx, e, EntityTopics, e.topicsQuery(offset, limit), func(r dbTopic) {
		topics[r.TID] = r.canonical(startms)
	}); err != nil {
		return nil, err
	}
	return topics, nil
}
