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

// Package sample implements the "sample" command.
package sample

import (
	"context"
	"errors"
	"log/slog"

	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/cfg"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/golang/base"
	"github.com/forumport/vanillaexport/internal/fixtures"
)

var CmdSample = &base.Command{
	Run:       runSample,
	UsageLine: "vanillaexport sample [-o file]",
	Short:     "create the sample Vanilla database",
	Long: `
# Sample Command

Creates the SQLite database with the subset of the Vanilla schema that is
read by the exporter, filled with the sample data.  The database can be used
to try out the other commands:

	vanillaexport sample -o vanilla.db
	vanillaexport dump -driver sqlite -database vanilla.db -o dump.zip

The command refuses to overwrite an existing file.
`,
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
}

var output = "vanilla.db"

func init() {
	CmdSample.Flag.StringVar(&output, "o", output, "output database `file`")
}

func runSample(ctx context.Context, cmd *base.Command, args []string) error {
	if output == "" {
		return base.WithStatus(base.SInvalidParameters, errors.New("output file is not specified"))
	}
	if err := fixtures.Create(ctx, output); err != nil {
		if errors.Is(err, fixtures.ErrExists) {
			return base.WithStatus(base.SInvalidParameters, err)
		}
		return err
	}
	slog.InfoContext(ctx, "sample database created", "file", output, "driver", fixtures.Driver)
	return nil
}
