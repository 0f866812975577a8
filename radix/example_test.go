// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package radix_test

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/go-base/radix"
)

func ExampleConvert() {
	out, err := radix.Convert("ff", 16, 10)
	fmt.Println(out, err)
	_, err = radix.Convert("g", 16, 10)
	fmt.Println(err, errors.Is(err, radix.ErrInvalidDigit))
	// Output:
	// 255 <nil>
	// invalid digit for base 16 true
}

func ExampleDecode() {
	v, _ := radix.Decode("zz", 36)
	s, _ := radix.Encode(v, 2)
	fmt.Println(v, s)
	// Output:
	// 1295 10100001111
}
