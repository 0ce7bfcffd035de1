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

// In this file: private conversations (rooms) and their messages.

import (
	"context"
	"database/sql"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/forumport/vanillaexport/internal/normalize"
	"github.com/forumport/vanillaexport/internal/query"
	"github.com/forumport/vanillaexport/types"
)

const roomNamePrefix = "Chat Room "

type dbRoom struct {
	RoomID       int64          `db:"room_id"`
	UID          sql.NullInt64  `db:"uid"`
	Contributors sql.NullString `db:"contributors"`
	Created      sql.NullInt64  `db:"created"`
}

func (r dbRoom) canonical(startms int64) types.Room {
	return types.Room{
		RoomID:    r.RoomID,
		UID:       r.UID.Int64,
		UIDs:      normalize.Contributors(r.Contributors.String),
		RoomName:  roomNamePrefix + strconv.FormatInt(r.RoomID, 10),
		Timestamp: normalize.Millis(r.Created, startms),
	}
}

func (e *Exporter) roomsQuery(offset, limit int) sq.SelectBuilder {
	d := e.qb.Dialect()
	s := e.qb.Select(
		query.As("r.ConversationID", "room_id"),
		query.As("r.InsertUserID", "uid"),
		query.As("r.Contributors", "contributors"),
		query.As(d.UnixTime("r.DateInserted"), "created"),
	).
		From(e.qb.From("Conversation", "r")).
		OrderBy("r.ConversationID")
	return query.Paginate(s, offset, limit)
}

// GetRooms returns all private conversations.
func (e *Exporter) GetRooms(ctx context.Context) (types.Rooms, error) {
	return e.GetPaginatedRooms(ctx, 0, -1)
}

// GetPaginatedRooms returns at most limit conversations, skipping offset
// conversations.  If offset or limit is negative, all conversations are
// returned.
func (e *Exporter) GetPaginatedRooms(ctx context.Context, offset, limit int) (types.Rooms, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	startms := e.startMillis()
	rooms := make(types.Rooms)
	if err := extract(ctx, e, EntityRooms, e.roomsQuery(offset, limit), func(r dbRoom) {
		rooms[r.RoomID] = r.canonical(startms)
	}); err != nil {
		return nil, err
	}
	return rooms, nil
}
