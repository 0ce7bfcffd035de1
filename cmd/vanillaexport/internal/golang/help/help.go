// Package help implements the "vanillaexport help" command and the usage
// output.  The templates are adapted from the golang source code:
//
//	Copyright 2017 The Go Authors. All rights reserved.
//	Use of this source code is governed by a BSD-style
//	license that can be found in the LICENSE file.
package help

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/forumport/vanillaexport/cmd/vanillaexport/internal/golang/base"
)

var ErrUnknownTopic = errors.New("unknown help topic")

var (
	funcs     = template.FuncMap{"trim": strings.TrimSpace, "capitalize": capitalize}
	usageTmpl = template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	cmdTmpl   = template.Must(template.New("command").Funcs(funcs).Parse(commandTemplate))
)

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + s[n:]
}

// PrintUsage writes the description of root and the list of its commands.
func PrintUsage(w io.Writer, root *base.Command) error {
	return usageTmpl.Execute(w, root)
}

// PrintCommand writes the description of cmd, followed by its flags, if
// cmd.PrintFlags is set.
func PrintCommand(w io.Writer, cmd *base.Command) error {
	if err := cmdTmpl.Execute(w, cmd); err != nil {
		return err
	}
	if !cmd.PrintFlags {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nFlags:"); err != nil {
		return err
	}
	fs := cmd.Flags()
	fs.SetOutput(w)
	fs.PrintDefaults()
	return nil
}

// Help prints the help for the command named by the only argument, or the
// usage of root if there are no arguments.
func Help(w io.Writer, root *base.Command, args []string) error {
	switch len(args) {
	case 0:
		return PrintUsage(w, root)
	case 1:
	default:
		return base.WithStatus(base.SInvalidParameters, fmt.Errorf("usage: %s help <command>", base.Program))
	}
	cmd := root.Lookup(args[0])
	if cmd == nil {
		return base.WithStatus(base.SInvalidParameters, fmt.Errorf("%s: %w, run '%s help'", args[0], ErrUnknownTopic, base.Program))
	}
	return PrintCommand(w, cmd)
}
