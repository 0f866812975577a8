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

	"github.com/DavidGamba/go-base/radix"
	"github.com/DavidGamba/go-base/text"
)

// ErrorHelpCalled - Indicates the help has been handled.
var ErrorHelpCalled = fmt.Errorf("help called")

// ErrorVersionCalled - Indicates the version has been handled.
var ErrorVersionCalled = fmt.Errorf("version called")

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every ArgumentError matches it with errors.Is.
var ErrorParsing = errors.New("")

// Argument errors
var (
	ErrorUnknownOption      = errors.New("unknown option")
	ErrorMissingArgument    = errors.New("missing argument")
	ErrorUnexpectedArgument = errors.New("unexpected argument")
	ErrorInvalidValue       = errors.New("invalid value")
	ErrorBaseOutOfRange     = errors.New("base out of range")
	ErrorMissingOperand     = errors.New("missing operand")
)

// ArgumentError - Malformed, unrecognized or incomplete cli args.
type ArgumentError struct {
	Option string // Option as written on the command line
	Value  string // Offending value, if any
	Err    error  // One of the Error* argument sentinels
}

func (e *ArgumentError) Error() string {
	switch {
	case errors.Is(e.Err, ErrorUnknownOption):
		return fmt.Sprintf(text.ErrorUnknownOption, e.Option)
	case errors.Is(e.Err, ErrorMissingArgument):
		return fmt.Sprintf(text.ErrorMissingArgument, e.Option)
	case errors.Is(e.Err, ErrorUnexpectedArgument):
		return fmt.Sprintf(text.ErrorUnexpectedArgument, e.Option, e.Value)
	case errors.Is(e.Err, ErrorInvalidValue):
		return fmt.Sprintf(text.ErrorInvalidValue, e.Option, e.Value)
	case errors.Is(e.Err, ErrorBaseOutOfRange):
		return fmt.Sprintf(text.ErrorBaseOutOfRange, e.Option, e.Value, radix.MinBase, radix.MaxBase)
	case errors.Is(e.Err, ErrorMissingOperand):
		return text.ErrorMissingOperand
	}
	return fmt.Sprintf("%s: %s", e.Option, e.Err)
}

func (e *ArgumentError) Unwrap() []error {
	return []error{e.Err, ErrorParsing}
}
