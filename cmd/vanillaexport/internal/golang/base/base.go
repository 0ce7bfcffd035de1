// Package base defines the command type shared by all vanillaexport
// commands, and the mapping of command errors to the process exit status.
//
// The command layout follows golang's `go` command implementation, which
// is BSD-licensed:
//
//	Copyright 2017 The Go Authors. All rights reserved.
//	Use of this source code is governed by a BSD-style
//	license that can be found in the LICENSE file.
package base

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/cfg"
)

// Program is the executable name used in the usage messages.
const Program = "vanillaexport"

var ErrNotRunnable = errors.New("not a runnable command")

// Command is a vanillaexport command.
type Command struct {
	// Run runs the command with the arguments left after the flags.  The
	// exit status is derived from the returned error, see Status.
	Run func(ctx context.Context, cmd *Command, args []string) error

	UsageLine string // "vanillaexport <name> [flags]"
	Short     string // shown in the command list
	Long      string // shown by "vanillaexport help <name>"

	Flag flag.FlagSet
	// FlagMask lists the common flags that the command does not accept.
	FlagMask cfg.FlagMask
	// CustomFlags is set if the command parses its arguments itself.
	CustomFlags bool
	// PrintFlags is set if the help output should list the flags.
	PrintFlags bool

	// Commands are the subcommands, in the order of the help output.
	Commands []*Command

	baseFlags bool
}

var VanillaExport = &Command{
	UsageLine: Program,
	Long:      `Vanillaexport reads the Vanilla Forums database and exports users, categories, discussions, comments, conversations, kudos and bookmarks in the canonical forum import format.`,
	// Commands initialised in main.
}

// Name returns the second word of the usage line, or an empty string for the
// root command.
func (c *Command) Name() string {
	fields := strings.Fields(c.UsageLine)
	if len(fields) < 2 || strings.HasPrefix(fields[1], "[") || strings.HasPrefix(fields[1], "-") {
		return ""
	}
	return fields[1]
}

// Runnable reports whether the command can be run, as opposed to a help
// topic.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// Lookup returns the runnable subcommand with the given name, or nil.
func (c *Command) Lookup(name string) *Command {
	for _, sub := range c.Commands {
		if sub.Name() == name && sub.Runnable() {
			return sub
		}
	}
	return nil
}

// Flags returns the command flag set with the common flags registered, unless
// the command parses the flags itself.
func (c *Command) Flags() *flag.FlagSet {
	if !c.CustomFlags && !c.baseFlags {
		cfg.SetBaseFlags(&c.Flag, c.FlagMask)
		c.baseFlags = true
	}
	return &c.Flag
}

// PrintUsage writes the short usage hint.
func (c *Command) PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s\nRun '%s help %s' for details.\n", c.UsageLine, Program, c.Name())
}

// Execute parses args and runs the command.  If setup is not nil, it is
// called after the flags are parsed, and the function it returns is called
// once the command finishes.
func (c *Command) Execute(ctx context.Context, args []string, setup func(context.Context) (func(), error)) error {
	if !c.Runnable() {
		return WithStatus(SInvalidParameters, fmt.Errorf("%s: %w", c.Name(), ErrNotRunnable))
	}
	if !c.CustomFlags {
		fs := c.Flags()
		fs.Usage = func() { c.PrintUsage(fs.Output()) }
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return WithStatus(SHelpRequested, err)
			}
			return WithStatus(SInvalidParameters, err)
		}
		args = fs.Args()
	}
	if setup != nil {
		teardown, err := setup(ctx)
		if err != nil {
			return WithStatus(SInitializationError, err)
		}
		defer teardown()
	}
	return c.Run(ctx, c, args)
}

var atExitFuncs []func()

// AtExit registers f to be called by Exit.
func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

// Exit calls the AtExit functions and terminates the process with the code.
func Exit(code StatusCode) {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(int(code))
}
