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

import "regexp"

// MaxURLLen is the maximum URL length accepted by ValidateURL, as enforced by
// most browsers.
const MaxURLLen = 2083

var reURL = regexp.MustCompile(`^(ftp|http|https)://(\w+:?\w*@)?(\S+)(:[0-9]+)?(/|/([\w#!:.?+=&%@\-/]))?$`)

// ValidateURL returns u if it looks like an absolute ftp, http or https URL
// shorter than MaxURLLen, and an empty string otherwise.
func ValidateURL(u string) string {
	if u == "" || len(u) >= MaxURLLen || !reURL.MatchString(u) {
		return ""
	}
	return u
}
