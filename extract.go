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

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// extract executes the statement and calls fn for each scanned row.  T must
// be a struct with the db tags matching the selected column aliases.
func extract[T any](ctx context.Context, e *Exporter, ent Entity, stmt sq.SelectBuilder, fn func(T)) error {
	if err := e.ready(); err != nil {
		return err
	}
	lg := e.log.With("entity", ent)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return &QueryError{Entity: ent, Err: err}
	}
	lg.DebugContext(ctx, "query", "sql", sql, "args", args)

	var rows []T
	if err := sqlx.SelectContext(ctx, e.conn, &rows, rebind(e.conn, sql), args...); err != nil {
		lg.ErrorContext(ctx, "query failed", "error", err)
		return &QueryError{Entity: ent, Err: err}
	}
	for _, r := range rows {
		fn(r)
	}
	lg.DebugContext(ctx, "extracted", "rows", len(rows))
	return nil
}

// rebinder is something that can rebind a statement to the database dialect.
type rebinder interface {
	Rebind(string) string
}

// rebind attempts to rebind the statement to the database dialect on a
// supported conn.
func rebind(conn sqlx.QueryerContext, stmt string) string {
	if rb, ok := conn.(rebinder); ok {
		return rb.Rebind(stmt)
	}
	return stmt
}
