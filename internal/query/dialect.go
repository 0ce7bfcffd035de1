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

// Package query composes the SELECT statements used to read the Vanilla
// schema.  Statements are built with squirrel, and the few non-portable SQL
// functions are rendered by a Dialect, so that the same extractor runs
// against MySQL in production and SQLite in tests.
package query

import "strings"

// Dialect renders the SQL functions that differ between the supported
// databases.
type Dialect interface {
	// Name returns the dialect name.
	Name() string
	// UnixTime converts the DATETIME expression to epoch seconds.
	UnixTime(expr string) string
	// GroupConcat aggregates the expression into a comma separated list.
	GroupConcat(expr string) string
	// Concat concatenates the string expressions.
	Concat(expr ...string) string
	// If returns a if cond is true, b otherwise.
	If(cond, a, b string) string
	// DateMDY formats the DATE expression as mm/dd/yyyy.
	DateMDY(expr string) string
}

// Driver names.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

var (
	MySQL  Dialect = mysqlDialect{}
	SQLite Dialect = sqliteDialect{}
)

// ForDriver returns the dialect for the database/sql driver name.  Unknown
// drivers get the MySQL dialect.
func ForDriver(driver string) Dialect {
	switch strings.ToLower(driver) {
	case DriverSQLite, "sqlite3":
		return SQLite
	default:
		return MySQL
	}
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return DriverMySQL }

func (mysqlDialect) UnixTime(expr string) string {
	return "UNIX_TIMESTAMP(" + expr + ")"
}

func (mysqlDialect) GroupConcat(expr string) string {
	return "GROUP_CONCAT(" + expr + ")"
}

func (mysqlDialect) Concat(expr ...string) string {
	return "CONCAT(" + strings.Join(expr, ", ") + ")"
}

func (mysqlDialect) If(cond, a, b string) string {
	return "IF(" + cond + ", " + a + ", " + b + ")"
}

func (mysqlDialect) DateMDY(expr string) string {
	return "DATE_FORMAT(" + expr + ", '%m/%d/%Y')"
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return DriverSQLite }

func (sqliteDialect) UnixTime(expr string) string {
	return "CAST(strftime('%s', " + expr + ") AS INTEGER)"
}

func (sqliteDialect) GroupConcat(expr string) string {
	return "group_concat(" + expr + ")"
}

func (sqliteDialect) Concat(expr ...string) string {
	return "(" + strings.Join(expr, " || ") + ")"
}

func (sqliteDialect) If(cond, a, b string) string {
	return "CASE WHEN " + cond + " THEN " + a + " ELSE " + b + " END"
}

func (sqliteDialect) DateMDY(expr string) string {
	return "strftime('%m/%d/%Y', " + expr + ")"
}
