// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package base - Base number conversion utility.

Converts a list of numbers from one base to another, bases 2 through 36.

Usage

	base [OPTIONS] NUMBER...

	-f, --from N     convert from N base (default: 10)
	-t, --to N       convert to N base (default: 16)
	-h, --help       show this help page
	-v, --version    print version

For example:

	$ base 255 16
	ff
	10
	$ base -f 2 -t 8 101
	5

Option values are given as the next argument (`--from 16`) or attached with `=` (`--from=16`).
When an option is repeated the last value wins.

Option parsing stops at `--` or at the first argument that is not an option, everything after it is a NUMBER.
Use `--` to pass numbers that start with a dash.

The library entry point is CLI:

	cli := base.New("base", "v0.1.0")
	os.Exit(cli.Run(os.Args[1:]))
*/
package base

import (
	"io"
	"log"
	"os"
	"strconv"

	"github.com/DavidGamba/go-base/help"
	"github.com/DavidGamba/go-base/internal/option"
	"github.com/DavidGamba/go-base/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Default bases
const (
	DefaultFrom = 10
	DefaultTo   = 16
)

// ParsedArguments - Result of parsing the cli args.
type ParsedArguments struct {
	SourceBase      int
	DestinationBase int
	Operands        []string // Numbers in the order given
}

// CLI - Program wide settings.
// There is no global state, the program name and version used in the help and version output are set here.
type CLI struct {
	Name        string
	Version     string
	Description string

	Stdout io.Writer // Results, help and version output
	Stderr io.Writer // Errors

	// UseColor - Color error output.
	UseColor bool

	options option.Table
}

// New - Returns a CLI that writes to os.Stdout and os.Stderr.
func New(name, version string) *CLI {
	return &CLI{
		Name:        name,
		Version:     version,
		Description: text.HelpDescription,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		options:     newOptionTable(),
	}
}

func newOptionTable() option.Table {
	return option.Table{
		option.New(option.FromID, "from", "f").
			SetValue("N").
			SetDescription("convert from N base").
			SetDefaultStr(strconv.Itoa(DefaultFrom)),
		option.New(option.ToID, "to", "t").
			SetValue("N").
			SetDescription("convert to N base").
			SetDefaultStr(strconv.Itoa(DefaultTo)),
		option.New(option.HelpID, "help", "h").
			SetDescription("show this help page"),
		option.New(option.VersionID, "version", "v").
			SetDescription("print version"),
	}
}

// Help - Returns the help text.
func (cli *CLI) Help() string {
	return help.Help(cli.Name, cli.Description, cli.optionTable(), text.HelpOperand)
}

// VersionText - Returns the version text.
func (cli *CLI) VersionText() string {
	return help.Version(cli.Name, cli.Version)
}

// optionTable - allows using a CLI that wasn't built with New.
func (cli *CLI) optionTable() option.Table {
	if cli.options == nil {
		cli.options = newOptionTable()
	}
	return cli.options
}
