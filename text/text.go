// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorUnknownOption - Unknown option error
var ErrorUnknownOption = "unknown option '%s'"

// ErrorMissingArgument - Missing value for an option that requires one
var ErrorMissingArgument = "missing value for option '%s'"

// ErrorUnexpectedArgument - Value given to an option that doesn't take one
var ErrorUnexpectedArgument = "option '%s' doesn't take a value, got '%s'"

// ErrorInvalidValue - Option value is not a non-negative base 10 integer
var ErrorInvalidValue = "option '%s' expects a non-negative integer, got '%s'"

// ErrorBaseOutOfRange - Option value is outside of the supported base range
var ErrorBaseOutOfRange = "option '%s' base '%s' out of range [%d, %d]"

// ErrorMissingOperand - No numbers were given
var ErrorMissingOperand = "missing NUMBER operand"

// ErrorInvalidDigit - Conversion input contains a character that is not a digit in the base
var ErrorInvalidDigit = "invalid digit for base %d"

// ErrorEmptyNumber - Conversion input is empty
var ErrorEmptyNumber = "empty number"

// ErrorOutOfRange - Conversion input doesn't fit the supported magnitude
var ErrorOutOfRange = "value out of range"

// ErrorUnsupportedBase - Base outside of the supported range
var ErrorUnsupportedBase = "unsupported base %d"

// HelpNameHeader - Help Name Header
var HelpNameHeader = "NAME"

// HelpSynopsisHeader - Help Synopsis Header
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader - Help Options Header
var HelpOptionsHeader = "OPTIONS"

// HelpDescription - One line program description used in the help NAME section
var HelpDescription = "Base number conversion utility"

// HelpOperand - Synopsis operand placeholder
var HelpOperand = "NUMBER..."

// ErrorPrefix - Prefix used when reporting errors
var ErrorPrefix = "ERROR:"
