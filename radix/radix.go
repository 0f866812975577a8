// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package radix - converts unsigned integers between string representations in bases 2 through 36.

Digits are `0-9` followed by `a-z`.
Input is case insensitive, output is always lowercase.

Values are limited to the uint64 range; anything larger fails with ErrOutOfRange.
*/
package radix

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/DavidGamba/go-base/text"
)

// Supported base range.
const (
	MinBase = 2
	MaxBase = 36
)

// ErrInvalidDigit - The number is empty or contains a character that is not a digit in the base.
var ErrInvalidDigit = errors.New("invalid digit")

// ErrOutOfRange - The number doesn't fit in a uint64.
var ErrOutOfRange = errors.New("out of range")

// ErrUnsupportedBase - The base is outside of [MinBase, MaxBase].
var ErrUnsupportedBase = errors.New("unsupported base")

// ConversionError - Error converting a single number.
type ConversionError struct {
	Number string // Input as given
	Base   int    // Base that failed
	Err    error  // One of ErrInvalidDigit, ErrOutOfRange or ErrUnsupportedBase
}

func (e *ConversionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnsupportedBase):
		return fmt.Sprintf(text.ErrorUnsupportedBase, e.Base)
	case errors.Is(e.Err, ErrOutOfRange):
		return text.ErrorOutOfRange
	case e.Number == "":
		return text.ErrorEmptyNumber
	default:
		return fmt.Sprintf(text.ErrorInvalidDigit, e.Base)
	}
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ValidBase - Tells if b is within [MinBase, MaxBase].
func ValidBase(b int) bool {
	return b >= MinBase && b <= MaxBase
}

// Decode - Parses number as an unsigned integer written in base, most significant digit first.
func Decode(number string, base int) (uint64, error) {
	if !ValidBase(base) {
		return 0, &ConversionError{Number: number, Base: base, Err: ErrUnsupportedBase}
	}
	v, err := strconv.ParseUint(number, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ConversionError{Number: number, Base: base, Err: ErrOutOfRange}
		}
		return 0, &ConversionError{Number: number, Base: base, Err: ErrInvalidDigit}
	}
	return v, nil
}

// Encode - Writes v in base, most significant digit first, without leading zeros.
func Encode(v uint64, base int) (string, error) {
	if !ValidBase(base) {
		return "", &ConversionError{Number: strconv.FormatUint(v, 10), Base: base, Err: ErrUnsupportedBase}
	}
	return strconv.FormatUint(v, base), nil
}

// Convert - Rewrites number from base `from` into base `to`.
func Convert(number string, from, to int) (string, error) {
	if !ValidBase(to) {
		return "", &ConversionError{Number: number, Base: to, Err: ErrUnsupportedBase}
	}
	v, err := Decode(number, from)
	if err != nil {
		return "", err
	}
	return Encode(v, to)
}
