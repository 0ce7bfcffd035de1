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
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/forumport/vanillaexport/internal/normalize"
	"github.com/forumport/vanillaexport/internal/query"
	"github.com/forumport/vanillaexport/types"
)

const (
	untitledCategory = "Untitled Category "
	noDescription    = "No description available"
)

type dbCategory struct {
	CID         int64          `db:"cid"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	Created     sql.NullInt64  `db:"created"`
}

func (r dbCategory) canonical(startms int64) types.Category {
	return types.Category{
		CID:         r.CID,
		Name:        normalize.OrDefault(r.Name.String, untitledCategory+strconv.FormatInt(r.CID, 10)),
		Description: normalize.OrDefault(r.Description.String, noDescription),
		Timestamp:   normalize.Millis(r.Created, startms),
	}
}

func (e *Exporter) categoriesQuery(offset, limit int) sq.SelectBuilder {
	d := e.qb.Dialect()
	s := e.qb.Select(
		query.As("c.CategoryID", "cid"),
		query.As("c.Name", "name"),
		query.As("c.Description", "description"),
		query.As(d.UnixTime("c.DateInserted"), "created"),
	).
		From(e.qb.From("Category", "c")).
		// Vanilla has a root category with id -1, it is not a real category.
		Where("c.CategoryID > -1").
		OrderBy("c.CategoryID")
	return query.Paginate(s, offset, limit)
}

// GetCategories returns all categories.
func (e *Exporter) GetCategories(ctx context.Context) (types.Categories, error) {
	return e.GetPaginatedCategories(ctx, 0, -1)
}

// GetPaginatedCategories returns at most limit categories, skipping offset
// categories.  If offset or limit is negative, all categories are returned.
func (e *Exporter) GetPaginatedCategories(ctx context.Context, offset, limit int) (types.Categories, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	startms := e.startMillis()
	cats := make(types.Categories)
	if err := extract(ctx, e, EntityCategories, e.categoriesQuery(offset, limit), func(r dbCategory) {
		cats[r.CID] = r.canonical(startms)
	}); err != nil {
		return nil, err
	}
	return cats, nil
}
