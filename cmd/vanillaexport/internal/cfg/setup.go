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

package cfg

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/forumport/vanillaexport"
)

// Setup returns the exporter configuration.  The parameters are read from the
// ConfigFile, if set, and then overridden by the ones given on the command
// line or in the environment.
func Setup() (vanillaexport.Config, error) {
	raw := make(map[string]any)
	if ConfigFile != "" {
		if _, err := toml.DecodeFile(ConfigFile, &raw); err != nil {
			return vanillaexport.Config{}, fmt.Errorf("config file %s: %w", ConfigFile, err)
		}
		slog.Debug("loaded configuration file", "filename", ConfigFile)
	}
	for k, v := range DB.params() {
		// aliases take precedence in ParseConfig.
		for _, alias := range aliases[k] {
			delete(raw, alias)
		}
		raw[k] = v
	}
	return vanillaexport.ParseConfig(raw), nil
}

// aliases lists the alternative names of the setup parameters.
var aliases = map[string][]string{
	"host":     {"dbhost"},
	"user":     {"dbuser"},
	"password": {"dbpass", "pass"},
	"port":     {"dbport"},
	"database": {"dbname", "name"},
	"prefix":   {"tablePrefix"},
}

// params returns the non-empty parameters in the form accepted by
// vanillaexport.ParseConfig.
func (p DBParams) params() map[string]any {
	m := make(map[string]any)
	set := func(k string, v string) {
		if v != "" {
			m[k] = v
		}
	}
	set("driver", p.Driver)
	set("host", p.Host)
	set("user", p.User)
	set("password", p.Password)
	set("database", p.Database)
	set("prefix", p.Prefix)
	set("custom", p.Custom)
	if p.Port != 0 {
		m["port"] = p.Port
	}
	return m
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the command options struct v using the "validate" struct
// tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
