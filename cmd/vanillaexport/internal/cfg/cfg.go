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

// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"os"

	"github.com/rusq/osenv/v2"
)

// Environment variables that provide the flag defaults.
const (
	EnvDriver   = "VANILLA_DB_DRIVER"
	EnvHost     = "VANILLA_DB_HOST"
	EnvPort     = "VANILLA_DB_PORT"
	EnvUser     = "VANILLA_DB_USER"
	EnvPassword = "VANILLA_DB_PASSWORD"
	EnvDatabase = "VANILLA_DB_NAME"
	EnvPrefix   = "VANILLA_DB_PREFIX"
	EnvCustom   = "VANILLA_CUSTOM"
)

var (
	TraceFile   string
	LogFile     string
	JSONHandler bool
	Verbose     bool

	ConfigFile string // TOML file with the connection parameters.

	// DB holds the connection parameters given on the command line or in the
	// environment.  Zero values are filled from the ConfigFile, or get the
	// defaults.
	DB DBParams
)

// DBParams are the database connection parameters.
type DBParams struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Prefix   string
	Custom   string // JSON object with custom options.
}

type FlagMask uint16

const (
	DefaultFlags FlagMask = 0
	OmitDBFlags  FlagMask = 1 << iota
	OmitConfigFlag

	OmitAll = OmitDBFlags | OmitConfigFlag
)

// SetBaseFlags sets base flags.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", os.Getenv("TRACE_FILE"), "trace `filename`")
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONHandler, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&OmitConfigFlag == 0 {
		fs.StringVar(&ConfigFile, "config", os.Getenv("VANILLA_CONFIG"), "TOML configuration `file` with the connection parameters")
	}
	if mask&OmitDBFlags == 0 {
		fs.StringVar(&DB.Driver, "driver", os.Getenv(EnvDriver), "database `driver`: mysql or sqlite (default: mysql)\n(environment: "+EnvDriver+")")
		fs.StringVar(&DB.Host, "host", os.Getenv(EnvHost), "database `host` (default: localhost)\n(environment: "+EnvHost+")")
		fs.IntVar(&DB.Port, "port", osenv.Value(EnvPort, 0), "database `port` (default: 3306)\n(environment: "+EnvPort+")")
		fs.StringVar(&DB.User, "user", os.Getenv(EnvUser), "database `user` (default: root)\n(environment: "+EnvUser+")")
		fs.StringVar(&DB.Password, "password", osenv.Secret(EnvPassword, ""), "database `password`\n(environment: "+EnvPassword+")")
		fs.StringVar(&DB.Database, "database", os.Getenv(EnvDatabase), "database `name`, or the file name for sqlite (default: vanilla)\n(environment: "+EnvDatabase+")")
		fs.StringVar(&DB.Prefix, "prefix", os.Getenv(EnvPrefix), "table `prefix` (default: GDN_)\n(environment: "+EnvPrefix+")")
		fs.StringVar(&DB.Custom, "custom", os.Getenv(EnvCustom), "custom options `JSON`, i.e. {\"importKudos\":true}\n(environment: "+EnvCustom+")")
	}
}
