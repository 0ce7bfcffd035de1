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

// Package dump implements the "dump" command.
package dump

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rusq/fsadapter"
	"github.com/rusq/osenv/v2"
	"github.com/schollz/progressbar/v3"

	"github.com/forumport/vanillaexport"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/cfg"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/golang/base"
	"github.com/forumport/vanillaexport/internal/osext"
)

var CmdDump = &base.Command{
	Run:       runDump,
	UsageLine: "vanillaexport dump [flags]",
	Short:     "dump all entities to a directory or a ZIP file",
	Long: `
# Dump Command

Extracts users, categories, conversations, messages, discussions, comments,
kudos and bookmarks page by page, and writes each page to the output directory
or ZIP file as <entity>/<offset>.json.  The manifest.json file, describing
the dump, is written last.

Kudos and bookmarks are only dumped if enabled in the custom options:

	-custom '{"importKudos":true,"importBookmarks":true}'

Attachments are listed with discussions and comments if the
"importAttachments" option is set.
`,
	PrintFlags: true,
}

type options struct {
	Output string  `validate:"required"`
	Page   int     `validate:"gt=0"`
	Rate   float64 `validate:"gte=0"`
}

var opts = options{
	Page: defPageSize,
}

func init() {
	defOutput := fmt.Sprintf("vanilla_%s.zip", time.Now().Format("20060102_150405"))
	CmdDump.Flag.StringVar(&opts.Output, "o", osenv.Value("VANILLA_OUTPUT", defOutput), "output `location`: a directory or a ZIP file")
	CmdDump.Flag.IntVar(&opts.Page, "page", defPageSize, "number of `rows` per page")
	CmdDump.Flag.Float64Var(&opts.Rate, "rate", 0, "maximum number of page queries per second, 0 for no limit")
}

func runDump(ctx context.Context, cmd *base.Command, args []string) error {
	if err := cfg.Validate(opts); err != nil {
		return base.WithStatus(base.SInvalidParameters, err)
	}
	if err := osext.CheckOutput(opts.Output); err != nil {
		return base.WithStatus(base.SInvalidParameters, err)
	}
	conf, err := cfg.Setup()
	if err != nil {
		return base.WithStatus(base.SInvalidParameters, err)
	}

	e, err := vanillaexport.New(ctx, conf, vanillaexport.WithLogger(slog.Default()))
	if err != nil {
		return base.WithStatus(base.SInitializationError, err)
	}
	defer e.Close()

	fsa, err := fsadapter.New(opts.Output)
	if err != nil {
		return base.WithStatus(base.SInitializationError, err)
	}
	defer fsa.Close()

	pb := newProgressBar()
	defer pb.Close()

	start := time.Now()
	d := NewDumper(e, fsa, WithPageSize(opts.Page), WithRate(opts.Rate), WithProgress(pb))
	m, err := d.Dump(ctx)
	if err != nil {
		return err
	}
	pb.Finish()

	var rows int
	var size int64
	for _, st := range m.Entities {
		rows += st.Rows
		size += st.Bytes
	}
	slog.InfoContext(ctx, "dump finished",
		"output", opts.Output,
		"id", m.ID,
		"rows", humanize.Comma(int64(rows)),
		"size", humanize.Bytes(uint64(size)),
		"took", time.Since(start).String(),
	)
	return nil
}

// newProgressBar returns the progress bar.  The bar is only shown if the
// standard error is a terminal.
func newProgressBar() *progressbar.ProgressBar {
	popts := []progressbar.Option{
		progressbar.OptionSetDescription("Dumping"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}
	if !osext.IsTerminalStderr() {
		popts = append(popts, progressbar.OptionSetWriter(io.Discard))
	}
	return progressbar.NewOptions(-1, popts...)
}
