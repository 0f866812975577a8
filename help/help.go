// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - renders the help and version text.
// The script name is always passed in by the caller.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-base/internal/option"
	"github.com/DavidGamba/go-base/text"
)

// Padding -
var Padding = 4

// Width - Synopsis lines are wrapped past this width.
var Width = 80

// Name - Returns the NAME section.
func Name(scriptName, description string) string {
	out := scriptName
	if description != "" {
		description = strings.ReplaceAll(description, "\n", "\n"+strings.Repeat(" ", Padding*2))
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, strings.Repeat(" ", Padding), out)
}

// Synopsis - Returns the SYNOPSIS section, options are listed in the given order followed by the operand.
func Synopsis(scriptName string, options []*option.Option, operand string) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	optSynopsis := func(opt *option.Option) string {
		aliases := []string{}
		if opt.Alias != "" {
			aliases = append(aliases, "-"+opt.Alias)
		}
		if opt.Name != "" {
			aliases = append(aliases, "--"+opt.Name)
		}
		aliasStr := strings.Join(aliases, "|")
		if opt.HasValue {
			return fmt.Sprintf("[%s <%s>]", aliasStr, opt.HelpArgName)
		}
		return fmt.Sprintf("[%s]", aliasStr)
	}
	var out string
	line := scriptName
	add := func(syn string) {
		if len(line)+len(syn)+1 > Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	for _, opt := range options {
		add(optSynopsis(opt))
	}
	if operand != "" {
		add(operand)
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// OptionList - Return a formatted list of options and their descriptions.
func OptionList(options []*option.Option) string {
	if len(options) == 0 {
		return ""
	}
	factor := 0
	for _, opt := range options {
		if len(opt.HelpSynopsis) > factor {
			factor = len(opt.HelpSynopsis)
		}
	}
	factor += Padding
	padding := strings.Repeat(" ", Padding+factor)
	out := fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
	for _, opt := range options {
		txt := strings.Repeat(" ", Padding) + pad(opt.HelpSynopsis, factor)
		if opt.Description != "" {
			txt += strings.ReplaceAll(opt.Description, "\n", "\n"+padding)
		}
		if opt.DefaultStr != "" {
			if opt.Description != "" {
				txt += " "
			}
			txt += fmt.Sprintf("(default: %s)", opt.DefaultStr)
		}
		out += strings.TrimRight(txt, " ") + "\n"
	}
	return out
}

// Version - Returns the version line.
func Version(scriptName, version string) string {
	return fmt.Sprintf("%s %s\n", scriptName, version)
}

// Help - Returns the full help: NAME, SYNOPSIS and OPTIONS sections.
func Help(scriptName, description string, options []*option.Option, operand string) string {
	return Name(scriptName, description) + "\n" +
		Synopsis(scriptName, options, operand) + "\n" +
		OptionList(options)
}
