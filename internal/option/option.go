// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal flag definition table and matching.
package option

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ID - Identifies what an option does once matched.
type ID int

// Option IDs
const (
	UnknownID ID = iota
	VersionID
	HelpID
	ToID
	FromID
)

func (id ID) String() string {
	switch id {
	case VersionID:
		return "version"
	case HelpID:
		return "help"
	case ToID:
		return "to"
	case FromID:
		return "from"
	default:
		return "unknown"
	}
}

// Option - A single flag definition.
type Option struct {
	ID       ID
	Name     string // Long name, used as --name
	Alias    string // Short name, used as -a
	HasValue bool   // Indicates the option consumes a value

	// Help
	DefaultStr   string // String representation of default value
	Description  string // Optional description used for help
	HelpArgName  string // Optional arg name used for help
	HelpSynopsis string // Help synopsis
}

// New - Returns a new option definition without a value.
func New(id ID, name, alias string) *Option {
	opt := &Option{
		ID:    id,
		Name:  name,
		Alias: alias,
	}
	opt.Synopsis()
	return opt
}

// Synopsis - Regenerates the HelpSynopsis string, for example: `-f, --from N`.
func (opt *Option) Synopsis() {
	aliases := []string{}
	if opt.Alias != "" {
		aliases = append(aliases, "-"+opt.Alias)
	}
	if opt.Name != "" {
		aliases = append(aliases, "--"+opt.Name)
	}
	opt.HelpSynopsis = strings.Join(aliases, ", ")
	if opt.HasValue {
		opt.HelpSynopsis += fmt.Sprintf(" %s", opt.HelpArgName)
	}
}

// SetValue - Marks the option as taking a value and sets the arg name used in help.
func (opt *Option) SetValue(argName string) *Option {
	opt.HasValue = true
	opt.HelpArgName = argName
	opt.Synopsis()
	return opt
}

// SetDescription - Updates the Description.
func (opt *Option) SetDescription(s string) *Option {
	opt.Description = s
	return opt
}

// SetDefaultStr - Updates the DefaultStr.
func (opt *Option) SetDefaultStr(s string) *Option {
	opt.DefaultStr = s
	return opt
}

// Is - Tells if the given name refers to this option.
// Long names only match the long form and short names only match the short form.
func (opt *Option) Is(name string, long bool) bool {
	if long {
		return opt.Name != "" && opt.Name == name
	}
	return opt.Alias != "" && opt.Alias == name
}

// Match - Result of matching a cli token against a Table.
// A zero Match is Unmatched.
type Match struct {
	Option *Option
	Used   string   // Option as written on the command line, including dashes
	Args   []string // Inline arguments, as in --from=16
}

// Unmatched - Match result for a token with no definition.
var Unmatched = Match{}

// Matched - Tells if the Match refers to a defined option.
func (m Match) Matched() bool {
	return m.Option != nil
}

// ID - Returns the matched option ID or UnknownID.
func (m Match) ID() ID {
	if m.Option == nil {
		return UnknownID
	}
	return m.Option.ID
}

// Table - Ordered list of option definitions.
type Table []*Option

// Match - Scans the full table for an option matching name.
// name is given without leading dashes, long indicates it was written with `--`.
func (t Table) Match(name string, long bool, args ...string) Match {
	used := "-" + name
	if long {
		used = "--" + name
	}
	for _, opt := range t {
		if opt.Is(name, long) {
			Logger.Printf("matched '%s' to option '%s'", used, opt.ID)
			return Match{Option: opt, Used: used, Args: args}
		}
	}
	Logger.Printf("no match for '%s'", used)
	return Unmatched
}

// Get - Returns the option with the given ID.
func (t Table) Get(id ID) (*Option, bool) {
	for _, opt := range t {
		if opt.ID == id {
			return opt, true
		}
	}
	return nil, false
}
