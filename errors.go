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
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by the extractors if the database connection
// is not set up, or has already been closed.
var ErrNotConfigured = errors.New("database connection is not set up, create the exporter with New")

// QueryError is returned when the extraction query fails.  It wraps the
// underlying database error.
type QueryError struct {
	Entity Entity
	Err    error
}

func (qe *QueryError) Error() string {
	return fmt.Sprintf("%s query failed: %s", qe.Entity, qe.Err)
}

func (qe *QueryError) Unwrap() error {
	return qe.Err
}

func (qe *QueryError) Is(target error) bool {
	return target == qe.Err
}
