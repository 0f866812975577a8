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

	"github.com/DavidGamba/go-base/radix"
	"github.com/DavidGamba/go-base/text"
)

// Exit statuses
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Run - Parses args, converts every number and prints the results in order.
// Returns the process exit status.
//
// A number that fails to convert is reported on cli.Stderr and the rest are still converted.
func (cli *CLI) Run(args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		if errors.Is(err, ErrorHelpCalled) || errors.Is(err, ErrorVersionCalled) {
			return ExitSuccess
		}
		fmt.Fprintf(cli.errWriter(), "%s %s\n\n", cli.colorErrorBold(text.ErrorPrefix), err)
		fmt.Fprint(cli.errWriter(), cli.Help())
		return ExitFailure
	}

	status := ExitSuccess
	for _, number := range parsed.Operands {
		out, err := radix.Convert(number, parsed.SourceBase, parsed.DestinationBase)
		if err != nil {
			Logger.Printf("failed to convert '%s': %v", number, err)
			fmt.Fprintf(cli.errWriter(), "%s %s: %s\n", cli.colorErrorBold(text.ErrorPrefix), cli.colorError(number), err)
			status = ExitFailure
			continue
		}
		fmt.Fprintln(cli.writer(), out)
	}
	return status
}

func (cli *CLI) errWriter() io.Writer {
	if cli.Stderr == nil {
		return io.Discard
	}
	return cli.Stderr
}
