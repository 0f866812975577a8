// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package base

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/DavidGamba/go-base/internal/option"
	"github.com/DavidGamba/go-base/internal/sliceiterator"
	"github.com/DavidGamba/go-base/radix"
)

// Parse - Parses the cli args, without the program name, in a single left to right pass.
//
// When help or version are requested the text is written to cli.Stdout and ErrorHelpCalled or ErrorVersionCalled is returned.
// Any other error is an *ArgumentError.
func (cli *CLI) Parse(args []string) (*ParsedArguments, error) {
	parsed := &ParsedArguments{
		SourceBase:      DefaultFrom,
		DestinationBase: DefaultTo,
		Operands:        []string{},
	}
	table := cli.optionTable()
	iterator := sliceiterator.New(args)

	for iterator.Next() {
		value := iterator.Value()
		Logger.Printf("arg %d: '%s'", iterator.Index(), value)

		// handle terminator
		if value == "--" {
			iterator.Next()
			parsed.Operands = append(parsed.Operands, iterator.Remaining()...)
			break
		}

		optPair, is := isOption(value)
		if !is {
			parsed.Operands = append(parsed.Operands, iterator.Remaining()...)
			break
		}

		m := table.Match(optPair.Option, optPair.Long, optPair.Args...)
		if !m.Matched() {
			return nil, &ArgumentError{Option: value, Err: ErrorUnknownOption}
		}

		switch m.ID() {
		case option.HelpID, option.VersionID:
			if len(m.Args) > 0 {
				return nil, &ArgumentError{Option: m.Used, Value: m.Args[0], Err: ErrorUnexpectedArgument}
			}
			if m.ID() == option.HelpID {
				fmt.Fprint(cli.writer(), cli.Help())
				return nil, ErrorHelpCalled
			}
			fmt.Fprint(cli.writer(), cli.VersionText())
			return nil, ErrorVersionCalled
		case option.FromID:
			b, err := baseValue(m, iterator)
			if err != nil {
				return nil, err
			}
			parsed.SourceBase = b
		case option.ToID:
			b, err := baseValue(m, iterator)
			if err != nil {
				return nil, err
			}
			parsed.DestinationBase = b
		}
	}

	if len(parsed.Operands) == 0 {
		return nil, &ArgumentError{Err: ErrorMissingOperand}
	}

	Logger.Printf("parsed: from %d, to %d, numbers %v", parsed.SourceBase, parsed.DestinationBase, parsed.Operands)
	return parsed, nil
}

// baseValue - Reads the option value, either attached to the option or as the next arg, and validates it as a base.
func baseValue(m option.Match, iterator *sliceiterator.Iterator) (int, error) {
	var value string
	if len(m.Args) > 0 {
		value = m.Args[0]
	} else {
		v, ok := iterator.TakeNext()
		if !ok {
			return 0, &ArgumentError{Option: m.Used, Err: ErrorMissingArgument}
		}
		value = v
	}

	// ParseUint rejects empty strings and sign characters.
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ArgumentError{Option: m.Used, Value: value, Err: ErrorBaseOutOfRange}
		}
		return 0, &ArgumentError{Option: m.Used, Value: value, Err: ErrorInvalidValue}
	}
	if n < radix.MinBase || n > radix.MaxBase {
		return 0, &ArgumentError{Option: m.Used, Value: value, Err: ErrorBaseOutOfRange}
	}
	return int(n), nil
}

func (cli *CLI) writer() io.Writer {
	if cli.Stdout == nil {
		return io.Discard
	}
	return cli.Stdout
}
