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

type dbBookmark struct {
	UID   int64         `db:"uid"`
	TID   int64         `db:"tid"`
	Index sql.NullInt64 `db:"idx"`
}

func (r dbBookmark) canonical() types.Bookmark {
	return types.Bookmark{
		BID:   normalize.CompositeID(&r.UID, &r.TID),
		TID:   r.TID,
		UID:   r.UID,
		Index: r.Index.Int64,
	}
}

func (e *Exporter) bookmarksQuery(offset, limit int) sq.SelectBuilder {
	s := e.qb.Select(
		query.As("b.UserID", "uid"),
		query.As("b.DiscussionID", "tid"),
		query.As("b.CountComments", "idx"),
	).
		From(e.qb.From("UserDiscussion", "b")).
		OrderBy("b.UserID", "b.DiscussionID")
	return query.Paginate(s, offset, limit)
}

// GetBookmarks returns the read positions of all users in all discussions.
func (e *Exporter) GetBookmarks(ctx context.Context) (types.Bookmarks, error) {
	return e.GetPaginatedBookmarks(ctx, 0, -1)
}

// GetPaginatedBookmarks returns at most limit bookmarks, skipping offset
// bookmarks.  If offset or limit is negative, all bookmarks are returned.
//
// The bookmark index is the number of comments the user has seen in the
// discussion.  Bookmarks are only exported if the importBookmarks option is
// set, otherwise an empty map is returned and the database is not queried.
func (e *Exporter) GetPaginatedBookmarks(ctx context.Context, offset, limit int) (types.Bookmarks, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if !e.cfg.ImportBookmarks() {
		e.log.WarnContext(ctx, `skipping bookmarks import (enable with {"importBookmarks":true})`)
		return types.Bookmarks{}, nil
	}
	bms := make(types.Bookmarks)
	if err := extract(ctx, e, EntityBookmarks, e.bookmarksQuery(offset, limit), func(r dbBookmark) {
		b := r.canonical()
		bms[b.BID] = b
	}); err != nil {
		return nil, err
	}
	return bms, nil
}
