// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package base

import (
	"regexp"
	"strings"
)

// 1: leading dashes
// 2: option
// 3: =arg
var isOptionRegex = regexp.MustCompile(`^(--?)([^=]+)(.*?)$`)

type optionPair struct {
	Option string
	Long   bool
	// Set when the argument was attached to the option, as in --from=16.
	// An empty attached argument, as in --from=, is kept as a single empty string.
	Args []string
}

/*
isOption - Check if the given string is an option (starts with - or -- followed by at least one more character).
Return the option without the starting dashes and its argument if the string contained one.

Especial cases:

  - `--` is not an option, it is the option parsing terminator and the caller's responsibility.
  - `-` is not an option, it is an operand.

Short options are not bundled, `-ft` is the single short option `ft`.
*/
func isOption(s string) (optionPair, bool) {
	switch s {
	case "--":
		return optionPair{Option: "--"}, false
	case "-", "":
		return optionPair{}, false
	}

	match := isOptionRegex.FindStringSubmatch(s)
	if len(match) == 0 {
		if strings.HasPrefix(s, "-") {
			// Only =arg after the dash, for example -=16
			return optionPair{Option: strings.TrimPrefix(s, "-")}, true
		}
		return optionPair{}, false
	}
	opt := optionPair{
		Option: match[2],
		Long:   match[1] == "--",
	}
	if strings.HasPrefix(match[3], "=") {
		opt.Args = []string{strings.TrimPrefix(match[3], "=")}
	}
	return opt, true
}
