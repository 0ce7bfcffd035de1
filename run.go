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
	"errors"

	"github.com/forumport/vanillaexport/types"
)

// Window is the pagination window.
type Window struct {
	Offset int
	Limit  int
}

var (
	// DefWindow is the default window of the paginated run.
	DefWindow = Window{Offset: 0, Limit: 1000}
	// Unbounded selects all rows.
	Unbounded = Window{Offset: 0, Limit: -1}
)

// Result is the result of the preset run.
type Result struct {
	Config     Config
	Users      types.Users
	Categories types.Categories
	Topics     types.Topics
	Posts      types.Posts
}

// FullRun opens the database, extracts all users, categories, topics and
// posts and closes the database.
func FullRun(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	return PaginatedRun(ctx, cfg, Unbounded, opts...)
}

// PaginatedRun is FullRun that extracts only the rows within the window w.
func PaginatedRun(ctx context.Context, cfg Config, w Window, opts ...Option) (res *Result, err error) {
	e, err := New(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	res = &Result{Config: e.Config()}
	if res.Users, err = e.GetPaginatedUsers(ctx, w.Offset, w.Limit); err != nil {
		return nil, err
	}
	if res.Categories, err = e.GetPaginatedCategories(ctx, w.Offset, w.Limit); err != nil {
		return nil, err
	}
	if res.Topics, err = e.GetPaginatedTopics(ctx, w.Offset, w.Limit); err != nil {
		return nil, err
	}
	if res.Posts, err = e.GetPaginatedPosts(ctx, w.Offset, w.Limit); err != nil {
		return nil, err
	}
	return res, nil
}
