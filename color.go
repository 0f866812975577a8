// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package base

import (
	"github.com/fatih/color"
)

func (cli *CLI) colorError(s string) string {
	return cli.color(color.New(color.FgRed), s)
}

func (cli *CLI) colorErrorBold(s string) string {
	return cli.color(color.New(color.FgRed, color.Bold), s)
}

// color - UseColor overrides the color package global NoColor setting, which only looks at stdout.
func (cli *CLI) color(c *color.Color, s string) string {
	if cli.UseColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
