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
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/forumport/vanillaexport/internal/normalize"
	"github.com/forumport/vanillaexport/internal/query"
	"github.com/forumport/vanillaexport/types"
)

const (
	// SignatureLen is the maximum signature length accepted by the import
	// pipeline.
	SignatureLen = 150

	profileDir    = "/uploads/profile/"
	levelAdmin    = "administrator"
	metaSignature = "Plugin.Signatures.Sig"
	metaWebsite   = "Profile.Website"
)

type dbUser struct {
	UID          int64          `db:"uid"`
	Username     sql.NullString `db:"username"`
	RegEmail     sql.NullString `db:"registration_email"`
	Level        sql.NullString `db:"level"`
	JoinDate     sql.NullInt64  `db:"joindate"`
	Banned       sql.NullInt64  `db:"banned"`
	Email        sql.NullString `db:"email"`
	Photo        sql.NullString `db:"photo"`
	ShowEmail    sql.NullInt64  `db:"showemail"`
	LastPostTime sql.NullInt64  `db:"lastposttime"`
	ReadTIDs     sql.NullString `db:"read_tids"`
	PostCount    sql.NullInt64  `db:"postcount"`
	Birthday     sql.NullString `db:"birthday"`
	Signature    sql.NullString `db:"signature"`
	Website      sql.NullString `db:"website"`
}

func (r dbUser) canonical(startms int64) types.User {
	return types.User{
		UID:               r.UID,
		Username:          r.Username.String,
		RegistrationEmail: r.RegEmail.String,
		Level:             r.Level.String,
		JoinDate:          normalize.Millis(r.JoinDate, startms),
		Banned:            r.Banned.Int64 != 0,
		Email:             strings.ToLower(r.Email.String),
		Signature:         normalize.Truncate(r.Signature.String, SignatureLen),
		Website:           normalize.ValidateURL(r.Website.String),
		Picture:           picture(r.Photo.String),
		ShowEmail:         r.ShowEmail.Int64 != 0,
		LastPostTime:      normalize.Millis(r.LastPostTime, startms),
		ReadTIDs:          normalize.SplitIDs(r.ReadTIDs.String),
		PostCount:         r.PostCount.Int64,
		Birthday:          r.Birthday.String,
	}
}

// picture returns the profile picture path for the photo column value.
func picture(photo string) string {
	if photo == "" {
		return ""
	}
	return normalize.ProfilePath(profileDir + photo)
}

func (e *Exporter) usersQuery(offset, limit int) sq.SelectBuilder {
	d := e.qb.Dialect()
	// ids of discussions that had no new comments since the user has last
	// seen them.
	readTIDs := e.qb.Select(d.GroupConcat("d.DiscussionID")).
		From(e.qb.From("Discussion", "d")).
		Join(e.qb.From("UserDiscussion", "ud") + " ON (d.DiscussionID = ud.DiscussionID)").
		Where("ud.DateLastViewed >= d.DateLastComment").
		Where("ud.UserID = u.UserID")

	s := e.qb.Select(
		query.As("u.UserID", "uid"),
		query.As("u.Name", "username"),
		query.As("u.Email", "registration_email"),
		query.As(d.If("u.Admin = 1", "'"+levelAdmin+"'", "''"), "level"),
		query.As(d.UnixTime("u.DateFirstVisit"), "joindate"),
		query.As("u.Banned", "banned"),
		query.As("u.Email", "email"),
		query.As("u.Photo", "photo"),
		query.As("u.ShowEmail", "showemail"),
		query.As(d.UnixTime("u.DateLastActive"), "lastposttime"),
	).
		Column(sq.Alias(readTIDs, "read_tids")).
		Column(query.As("(u.CountDiscussions + u.CountComments)", "postcount")).
		Column(query.As(d.DateMDY("u.DateOfBirth"), "birthday")).
		Column(e.qb.UserMeta("u.UserID", metaSignature, "signature")).
		Column(e.qb.UserMeta("u.UserID", metaWebsite, "website")).
		From(e.qb.From("User", "u")).
		Where("u.Deleted = 0").
		OrderBy("u.UserID")
	return query.Paginate(s, offset, limit)
}

// GetUsers returns all users that are not deleted.
func (e *Exporter) GetUsers(ctx context.Context) (types.Users, error) {
	return e.GetPaginatedUsers(ctx, 0, -1)
}

// GetPaginatedUsers returns at most limit users, skipping offset users.  If
// offset or limit is negative, all users are returned.
func (e *Exporter) GetPaginatedUsers(ctx context.Context, offset, limit int) (types.Users, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	startms := e.startMillis()
	users := make(types.Users)
	if err := extract(ctx, e, EntityUsers, e.usersQuery(offset, limit), func(r dbUser) {
		users[r.UID] = r.canonical(startms)
	}); err != nil {
		return nil, err
	}
	return users, nil
}
