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

// Package normalize contains the field normalisers that turn raw Vanilla
// column values into the canonical representation.  All functions are total:
// malformed or absent input yields a default value, never an error.
package normalize

import (
	"database/sql"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultTruncateLen is used by Truncate when the requested limit is too
	// small to fit the ellipsis.
	DefaultTruncateLen = 20
	ellipsis           = "..."
)

// Millis converts the source epoch seconds to milliseconds.  If the value is
// NULL, zero or negative (dates before 1970), fallback (milliseconds) is
// returned.
func Millis(sec sql.NullInt64, fallback int64) int64 {
	if !sec.Valid || sec.Int64 <= 0 {
		return fallback
	}
	return sec.Int64 * 1000
}

// Truncate cuts s to limit runes, replacing the tail with an ellipsis.  The
// resulting string including the ellipsis is exactly limit runes long.  Limits
// of 3 or less are replaced with DefaultTruncateLen.
func Truncate(s string, limit int) string {
	if limit <= len(ellipsis) {
		limit = DefaultTruncateLen
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-len(ellipsis)]) + ellipsis
}

// TitleFirst upper-cases the first letter of s, leaving the rest intact.  A
// blank s yields the placeholder.  If s does not start with a valid UTF-8
// sequence, it is returned as is.
func TitleFirst(s string, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// OrDefault returns def if s is blank.
func OrDefault(s string, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// ProfilePath rewrites the profile picture path so that it points to the
// smallest thumbnail variant, which Vanilla stores with the "n" prefix in
// front of the file name:
//
//	/uploads/profile/userpics/123/abc.jpg -> /uploads/profile/userpics/123/nabc.jpg
func ProfilePath(p string) string {
	if p == "" {
		return ""
	}
	i := strings.LastIndex(p, "/") + 1
	return p[:i] + "n" + p[i:]
}
