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
	"encoding/json"
	"strconv"
	"strings"
)

const listSep = ","

// SplitList splits the comma-separated list, as produced by GROUP_CONCAT.
// Empty input results in an empty, non-nil slice.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSep)
}

// SplitIDs splits the comma-separated list of integer identifiers.  Elements
// that are not integers are skipped.
func SplitIDs(s string) []int64 {
	ids := make([]int64, 0)
	if s == "" {
		return ids
	}
	for _, el := range strings.Split(s, listSep) {
		id, err := strconv.ParseInt(strings.TrimSpace(el), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Contributors decodes the conversation participant list.  Vanilla stores it
// as a serialized array of strings:
//
//	a:3:{i:0;s:1:"1";i:1;s:1:"2";i:2;s:2:"10";}
//
// The grammar understood here is: the value is split on ";", only segments
// beginning with "s" (string entries) are considered, and every such segment
// must have the form s:<length>:"<id>".  The third colon-delimited piece,
// stripped of quotes, is parsed as an integer.  Newer Vanilla versions write
// a JSON array instead (["1","2","10"]), which is accepted as well.
//
// Empty input or any malformed string entry yields an empty slice.
func Contributors(s string) []int64 {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		return jsonIDs(s)
	}
	ids := make([]int64, 0)
	for seg := range strings.SplitSeq(s, ";") {
		if seg == "" || seg[0] != 's' {
			continue
		}
		pieces := strings.SplitN(seg, ":", 3)
		if len(pieces) < 3 {
			return []int64{}
		}
		id, err := strconv.ParseInt(strings.Trim(pieces[2], `"`), 10, 64)
		if err != nil {
			return []int64{}
		}
		ids = append(ids, id)
	}
	return ids
}

// jsonIDs decodes a JSON array of ids, given either as numbers or as
// strings.
func jsonIDs(s string) []int64 {
	var raw []json.Number
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return []int64{}
	}
	ids := make([]int64, 0, len(raw))
	for _, n := range raw {
		id, err := n.Int64()
		if err != nil {
			return []int64{}
		}
		ids = append(ids, id)
	}
	return ids
}
