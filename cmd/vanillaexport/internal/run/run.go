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

// Package run implements the "run" and "paginated" commands, that extract
// users, categories, discussions and comments and print the summary.
package run

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/forumport/vanillaexport"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/cfg"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/golang/base"
)

var CmdRun = &base.Command{
	Run:       runFull,
	UsageLine: "vanillaexport run [flags]",
	Short:     "extract all users, categories, discussions and comments",
	Long: `
# Run Command

Connects to the Vanilla database, extracts all users, categories, discussions
and comments, prints the number of extracted entities and disconnects.

It is useful to check the connection parameters and the table prefix before
running the dump.
`,
	PrintFlags: true,
}

var CmdPaginated = &base.Command{
	Run:       runPaginated,
	UsageLine: "vanillaexport paginated [flags]",
	Short:     "extract one page of users, categories, discussions and comments",
	Long: `
# Paginated Command

Same as "run", but extracts only the window of each entity, given by -offset
and -limit flags.
`,
	PrintFlags: true,
}

type paginatedOptions struct {
	Offset int `validate:"gte=0"`
	Limit  int `validate:"gte=-1"`
}

var window = paginatedOptions{
	Offset: vanillaexport.DefWindow.Offset,
	Limit:  vanillaexport.DefWindow.Limit,
}

func init() {
	CmdPaginated.Flag.IntVar(&window.Offset, "offset", vanillaexport.DefWindow.Offset, "number of rows to skip")
	CmdPaginated.Flag.IntVar(&window.Limit, "limit", vanillaexport.DefWindow.Limit, "maximum number of rows per entity, -1 for all")
}

func runFull(ctx context.Context, cmd *base.Command, args []string) error {
	return runWindow(ctx, vanillaexport.Unbounded)
}

func runPaginated(ctx context.Context, cmd *base.Command, args []string) error {
	if err := cfg.Validate(window); err != nil {
		return base.WithStatus(base.SInvalidParameters, err)
	}
	return runWindow(ctx, vanillaexport.Window{Offset: window.Offset, Limit: window.Limit})
}

func runWindow(ctx context.Context, w vanillaexport.Window) error {
	conf, err := cfg.Setup()
	if err != nil {
		return base.WithStatus(base.SInvalidParameters, err)
	}
	start := time.Now()
	res, err := vanillaexport.PaginatedRun(ctx, conf, w, vanillaexport.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "extraction finished", "took", time.Since(start).String())
	return printSummary(os.Stdout, res)
}

// printSummary prints the number of extracted entities.
func printSummary(w io.Writer, res *vanillaexport.Result) error {
	_, err := fmt.Fprintf(w,
		"Database:   %s (%s)\n"+
			"Users:      %s\n"+
			"Categories: %s\n"+
			"Topics:     %s\n"+
			"Posts:      %s\n",
		res.Config.Database, res.Config.Driver,
		humanize.Comma(int64(len(res.Users))),
		humanize.Comma(int64(len(res.Categories))),
		humanize.Comma(int64(len(res.Topics))),
		humanize.Comma(int64(len(res.Posts))),
	)
	return err
}
