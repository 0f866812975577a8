// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"os"
	"path/filepath"

	base "github.com/DavidGamba/go-base"
	"github.com/mattn/go-isatty"
)

const version = "v0.1.0"

func main() {
	os.Exit(program(os.Args))
}

func program(args []string) int {
	cli := base.New(filepath.Base(args[0]), version)
	fd := os.Stderr.Fd()
	cli.UseColor = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return cli.Run(args[1:])
}
