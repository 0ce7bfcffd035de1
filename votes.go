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

// kudosDownvote is the GDN_Kudos.Action value for a downvote, any other value
// is an upvote.
const kudosDownvote = 2

type dbVote struct {
	PID    sql.NullInt64 `db:"pid"`
	TID    sql.NullInt64 `db:"tid"`
	UID    int64         `db:"uid"`
	Action sql.NullInt64 `db:"action"`
}

func (r dbVote) canonical() types.Vote {
	v := types.Vote{
		PID:    nullableID(r.PID),
		TID:    nullableID(r.TID),
		UID:    r.UID,
		Action: types.Upvote,
	}
	if r.Action.Valid && r.Action.Int64 == kudosDownvote {
		v.Action = types.Downvote
	}
	v.VID = normalize.CompositeID(v.PID, v.TID, &v.UID)
	return v
}

// nullableID returns nil for NULL or zero id.
func nullableID(n sql.NullInt64) *int64 {
	if !n.Valid || n.Int64 == 0 {
		return nil
	}
	id := n.Int64
	return &id
}

func (e *Exporter) votesQuery(offset, limit int) sq.SelectBuilder {
	s := e.qb.Select(
		query.As("k.CommentID", "pid"),
		query.As("k.DiscussionID", "tid"),
		query.As("k.UserID", "uid"),
		query.As("k.Action", "action"),
	).
		From(e.qb.From("Kudos", "k")).
		OrderBy("k.UserID", "k.CommentID", "k.DiscussionID")
	return query.Paginate(s, offset, limit)
}

// GetVotes returns all kudos.
func (e *Exporter) GetVotes(ctx context.Context) (types.Votes, error) {
	return e.GetPaginatedVotes(ctx, 0, -1)
}

// GetPaginatedVotes returns at most limit kudos, skipping offset kudos.  If
// offset or limit is negative, all kudos are returned.
//
// Kudos are only exported if the importKudos option is set, otherwise an
// empty map is returned and the database is not queried.
func (e *Exporter) GetPaginatedVotes(ctx context.Context, offset, limit int) (types.Votes, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if !e.cfg.ImportKudos() {
		e.log.WarnContext(ctx, `skipping votes import (enable with {"importKudos":true})`)
		return types.Votes{}, nil
	}
	votes := make(types.Votes)
	if err := extract(ctx, e, EntityVotes, e.votesQuery(offset, limit), func(r dbVote) {
		v := r.canonical()
		votes[v.VID] = v
	}); err != nil {
		return nil, err
	}
	return votes, nil
}
