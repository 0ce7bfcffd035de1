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

// In this file: exporter configuration (config store).

import (
	"encoding/json"
	"log/slog"
	"maps"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/go-viper/mapstructure/v2"

	"github.com/forumport/vanillaexport/internal/query"
)

// Defaults applied by ParseConfig.
const (
	DefDriver   = query.DriverMySQL
	DefHost     = "localhost"
	DefUser     = "root"
	DefPort     = 3306
	DefDatabase = "vanilla"
	DefPrefix   = "GDN_"
)

// Feature flags recognised in the custom options.
const (
	OptImportAttachments = "importAttachments"
	OptImportKudos       = "importKudos"
	OptImportBookmarks   = "importBookmarks"

	optKudosEnabled = "kudosEnabled"
)

// Config is the resolved exporter configuration.
type Config struct {
	Driver   string // database/sql driver: "mysql" or "sqlite"
	Host     string
	User     string
	Password string
	Port     int
	Database string // database name, or the file name for sqlite
	Prefix   string // table prefix
	Custom   Custom // free-form custom options and feature flags
}

// DefConfig returns the configuration with all defaults applied.
func DefConfig() Config {
	return Config{
		Driver:   DefDriver,
		Host:     DefHost,
		User:     DefUser,
		Port:     DefPort,
		Database: DefDatabase,
		Prefix:   DefPrefix,
		Custom:   defCustom(),
	}
}

func defCustom() Custom {
	return Custom{optKudosEnabled: false}
}

// setupParams lists all keys recognised in the setup map, including the
// aliases.
type setupParams struct {
	Driver      string `mapstructure:"driver"`
	DBHost      string `mapstructure:"dbhost"`
	Host        string `mapstructure:"host"`
	DBUser      string `mapstructure:"dbuser"`
	User        string `mapstructure:"user"`
	DBPass      string `mapstructure:"dbpass"`
	Pass        string `mapstructure:"pass"`
	Password    string `mapstructure:"password"`
	DBPort      int    `mapstructure:"dbport"`
	Port        int    `mapstructure:"port"`
	DBName      string `mapstructure:"dbname"`
	Name        string `mapstructure:"name"`
	Database    string `mapstructure:"database"`
	Prefix      string `mapstructure:"prefix"`
	TablePrefix string `mapstructure:"tablePrefix"`
	Custom      any    `mapstructure:"custom"`
}

// ParseConfig resolves the setup map into the Config.  Every parameter may be
// given under any of its aliases, the first non-empty one wins, and missing
// parameters get the defaults.  Values are not validated.  The "custom"
// parameter may be a map or a JSON string; if it cannot be parsed, custom
// options are empty.
func ParseConfig(raw map[string]any) Config {
	var p setupParams
	if err := mapstructure.WeakDecode(raw, &p); err != nil {
		// whatever was decoded successfully is still in p.
		slog.Warn("some setup parameters could not be decoded", "error", err)
	}
	cfg := Config{
		Driver:   first(p.Driver, DefDriver),
		Host:     first(p.DBHost, p.Host, DefHost),
		User:     first(p.DBUser, p.User, DefUser),
		Password: first(p.DBPass, p.Pass, p.Password),
		Port:     first(p.DBPort, p.Port, DefPort),
		Database: first(p.DBName, p.Name, p.Database, DefDatabase),
		Prefix:   first(p.Prefix, p.TablePrefix, DefPrefix),
		Custom:   parseCustom(p.Custom),
	}
	return cfg
}

// first returns the first non-zero value.
func first[T comparable](v ...T) T {
	var zero T
	for _, s := range v {
		if s != zero {
			return s
		}
	}
	return zero
}

// parseCustom converts the custom options value into Custom.
func parseCustom(v any) Custom {
	var c Custom
	switch val := v.(type) {
	case nil:
	case string:
		if val == "" {
			break
		}
		if err := json.Unmarshal([]byte(val), &c); err != nil {
			slog.Warn("custom options are not a valid JSON, ignoring", "error", err)
			return Custom{}
		}
	default:
		if err := mapstructure.Decode(val, &c); err != nil {
			slog.Warn("custom options are not an object, ignoring", "error", err)
			return Custom{}
		}
	}
	if c == nil {
		return defCustom()
	}
	return c
}

// DriverName returns the database/sql driver name.
func (c Config) DriverName() string {
	return query.ForDriver(c.Driver).Name()
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.DriverName() == query.DriverSQLite {
		return c.Database
	}
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Database
	return mc.FormatDSN()
}

// Table returns the table name with the configured prefix.
func (c Config) Table(name string) string {
	return c.Prefix + name
}

// ImportAttachments reports whether the attachments should be exported with
// topics and posts.
func (c Config) ImportAttachments() bool {
	return c.Custom.Bool(OptImportAttachments)
}

// ImportKudos reports whether the votes should be exported.
func (c Config) ImportKudos() bool {
	return c.Custom.Bool(OptImportKudos)
}

// ImportBookmarks reports whether the bookmarks should be exported.
func (c Config) ImportBookmarks() bool {
	return c.Custom.Bool(OptImportBookmarks)
}

// LogValue implements slog.LogValuer, it omits the password.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", c.Driver),
		slog.String("host", c.Host),
		slog.Int("port", c.Port),
		slog.String("user", c.User),
		slog.String("database", c.Database),
		slog.String("prefix", c.Prefix),
		slog.Any("custom", map[string]any(c.Custom)),
	)
}

// Custom holds the custom options.
type Custom map[string]any

// Get returns the value of the option, or nil if it is not set.
func (c Custom) Get(key string) any {
	return c[key]
}

// Set sets the option value.
func (c *Custom) Set(key string, val any) {
	if *c == nil {
		*c = make(Custom)
	}
	(*c)[key] = val
}

// Map returns a copy of all options.
func (c Custom) Map() map[string]any {
	return maps.Clone(map[string]any(c))
}

// Replace replaces all options with m.
func (c *Custom) Replace(m map[string]any) {
	*c = maps.Clone(Custom(m))
	if *c == nil {
		*c = make(Custom)
	}
}

// Bool returns the option value as a boolean.  Strings and numbers are
// interpreted leniently ("true", "1", 1), anything that can't be interpreted
// is false.
func (c Custom) Bool(key string) bool {
	v, ok := c[key]
	if !ok || v == nil {
		return false
	}
	var b bool
	if err := mapstructure.WeakDecode(v, &b); err != nil {
		return false
	}
	return b
}
