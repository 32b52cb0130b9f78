// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digit

import (
	"errors"
	"fmt"
)

// Radix limits. Digits are returned as uint8, which bounds MaxRadix.
const (
	MinRadix = 2   // smallest supported radix
	MaxRadix = 256 // largest supported radix
)

// Errors returned by the radix forms of the digit functions. Returned errors
// wrap one of these values and should be tested with errors.Is.
var (
	// ErrInvalidRadix is returned for a radix outside [MinRadix, MaxRadix].
	ErrInvalidRadix = errors.New("digit: invalid radix")

	// ErrInvalidDigit is returned when a digit is not smaller than the radix.
	ErrInvalidDigit = errors.New("digit: invalid digit")

	// ErrOverflow is returned by FromDigits and FromDigitsRadix when the
	// reconstructed value does not fit in the requested type.
	ErrOverflow = errors.New("digit: value out of range")
)

// CheckRadix returns an error wrapping ErrInvalidRadix if radix is not a
// supported radix, nil otherwise.
func CheckRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return fmt.Errorf("%w %d", ErrInvalidRadix, radix)
	}
	return nil
}

func checkDigit(d uint8, radix int) error {
	if int(d) >= radix {
		return fmt.Errorf("%w %d for radix %d", ErrInvalidDigit, d, radix)
	}
	return nil
}
