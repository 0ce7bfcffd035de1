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

package normalize

import (
	"strconv"
	"strings"
)

// Placeholder is used in composite identifiers in place of an absent id.
const Placeholder = "N"

// CompositeID joins the identifiers with an underscore, using Placeholder
// for nil values.
func CompositeID(ids ...*int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		if id == nil {
			parts[i] = Placeholder
			continue
		}
		parts[i] = strconv.FormatInt(*id, 10)
	}
	return strings.Join(parts, "_")
}
