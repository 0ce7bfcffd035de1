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

package query

import (
	sq "github.com/Masterminds/squirrel"
)

// MediaPathPrefix is prepended to GDN_Media.Path to form the attachment URL.
const MediaPathPrefix = "/uploads/files"

// Media foreign tables.
const (
	ForeignDiscussion = "discussion"
	ForeignComment    = "comment"
)

const imageMIME = "image%"

// Builder builds the statements for a Vanilla database with the given table
// prefix.  Zero value is not usable, use New.
type Builder struct {
	d      Dialect
	prefix string
}

// New returns a new Builder.
func New(d Dialect, prefix string) Builder {
	if d == nil {
		d = MySQL
	}
	return Builder{d: d, prefix: prefix}
}

// Dialect returns the builder dialect.
func (b Builder) Dialect() Dialect {
	return b.d
}

// Table returns the prefixed table name.
func (b Builder) Table(name string) string {
	return b.prefix + name
}

// From returns the prefixed table name with an alias, suitable for FROM and
// JOIN clauses.
func (b Builder) From(name, alias string) string {
	return b.Table(name) + " AS " + alias
}

// Select starts a new SELECT statement.
func (b Builder) Select(columns ...string) sq.SelectBuilder {
	return sq.Select(columns...)
}

// As aliases the expression.
func As(expr, alias string) string {
	return expr + " AS " + alias
}

// Paginate adds the row limiting clause.  It is only added if both offset and
// limit are non-negative, otherwise all rows are selected.
func Paginate(s sq.SelectBuilder, offset, limit int) sq.SelectBuilder {
	if offset < 0 || limit < 0 {
		return s
	}
	return s.Limit(uint64(limit)).Offset(uint64(offset))
}

// Media returns the correlated subquery column that aggregates the media
// paths attached to the entity identified by foreignKey.  If images is true,
// only image MIME types are selected, otherwise everything except images.
func (b Builder) Media(foreignKey string, foreignTable string, images bool, alias string) sq.Sqlizer {
	op := "NOT LIKE"
	if images {
		op = "LIKE"
	}
	sub := sq.Select(b.d.GroupConcat(b.d.Concat("'"+MediaPathPrefix+"'", "media.Path"))).
		From(b.From("Media", "media")).
		Where("media.ForeignID = " + foreignKey).
		Where("media.Type "+op+" ?", imageMIME).
		Where(sq.Eq{"media.ForeignTable": foreignTable})
	return sq.Alias(sub, alias)
}

// UserMeta returns the correlated subquery column that selects the user
// meta value with the given name.
func (b Builder) UserMeta(userKey string, name string, alias string) sq.Sqlizer {
	sub := sq.Select("um.Value").
		From(b.From("UserMeta", "um")).
		Where("um.UserID = " + userKey).
		Where(sq.Eq{"um.Name": name})
	return sq.Alias(sub, alias)
}
