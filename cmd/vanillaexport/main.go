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

// Command vanillaexport exports the Vanilla Forums database in the canonical
// forum import format.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/cfg"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/dump"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/golang/base"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/golang/help"
	runcmd "github.com/forumport/vanillaexport/cmd/vanillaexport/internal/run"
	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/sample"
)

// secrets defines the names of the supported secret files that we load our
// secrets from.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	loadSecrets(secrets)

	base.VanillaExport.Commands = []*base.Command{
		runcmd.CmdRun,
		runcmd.CmdPaginated,
		dump.CmdDump,
		sample.CmdSample,
		CmdVersion,
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		usage()
	}

	err := run(args)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		slog.Error(args[0], "error", err)
	}
	base.Exit(base.Status(err))
}

var errUnknownCommand = errors.New("unknown command")

// run runs the command named by args[0].
func run(args []string) error {
	if args[0] == "help" {
		return help.Help(os.Stdout, base.VanillaExport, args[1:])
	}
	cmd := base.VanillaExport.Lookup(args[0])
	if cmd == nil {
		return base.WithStatus(base.SInvalidParameters, fmt.Errorf("%s: %w, run '%s help' for usage", args[0], errUnknownCommand, base.Program))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cmd.Execute(ctx, args[1:], instruments)
}

// instruments initialises the logging and tracing after the flags are
// parsed.
func instruments(ctx context.Context) (func(), error) {
	if _, err := initLog(cfg.LogFile, cfg.JSONHandler, cfg.Verbose); err != nil {
		return nil, err
	}
	return initTrace(cfg.TraceFile), nil
}

func usage() {
	if err := help.PrintUsage(os.Stderr, base.VanillaExport); err != nil {
		base.Exit(base.SGenericError)
	}
	base.Exit(base.SHelpRequested)
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
