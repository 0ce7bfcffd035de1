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

type dbMessage struct {
	MID     int64          `db:"mid"`
	RoomID  sql.NullInt64  `db:"room_id"`
	FromUID sql.NullInt64  `db:"from_uid"`
	Content sql.NullString `db:"content"`
	Created sql.NullInt64  `db:"created"`
}

func (r dbMessage) canonical(startms int64) types.Message {
	return types.Message{
		MID:       r.MID,
		RoomID:    r.RoomID.Int64,
		FromUID:   r.FromUID.Int64,
		Content:   r.Content.String,
		Timestamp: normalize.Millis(r.Created, startms),
	}
}

func (e *Exporter) messagesQuery(offset, limit int) sq.SelectBuilder {
	d := e.qb.Dialect()
	s := e.qb.Select(
		query.As("m.MessageID", "mid"),
		query.As("m.ConversationID", "room_id"),
		query.As("m.InsertUserID", "from_uid"),
		query.As("m.Body", "content"),
		query.As(d.UnixTime("m.DateInserted"), "created"),
	).
		From(e.qb.From("ConversationMessage", "m")).
		OrderBy("m.MessageID")
	return query.Paginate(s, offset, limit)
}

// GetMessages returns all private messages.
func (e *Exporter) GetMessages(ctx context.Context) (types.Messages, error) {
	return e.GetPaginatedMessages(ctx, 0, -1)
}

// GetPaginatedMessages returns at most limit messages, skipping offset
// messages.  If offset or limit is negative, all messages are returned.
func (e *Exporter) GetPaginatedMessages(ctx context.Context, offset, limit int) (types.Messages, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	startms := e.startMillis()
	msgs := make(types.Messages)
	if err := extract(ctx, e, EntityMessages, e.messagesQuery(offset, limit), func(r dbMessage) {
		msgs[r.MID] = r.canonical(startms)
	}); err != nil {
		return nil, err
	}
	return msgs, nil
}
